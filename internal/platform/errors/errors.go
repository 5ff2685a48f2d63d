package errors

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"unicode"

	"bitbucket.org/velvet/chauffeur-hub/internal/booking"
	"bitbucket.org/velvet/chauffeur-hub/internal/booking/wizard"
	"bitbucket.org/velvet/chauffeur-hub/internal/fleet"
	"bitbucket.org/velvet/chauffeur-hub/internal/pricing"
	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	ErrorBadParams            = goerrors.New("bad request params")
	ErrorInvalidIdempotency   = goerrors.New("invalid idempotency key")
	ErrorIdempotencyConflict  = goerrors.New("request with this idempotency key failed")
	ErrorRequestValidation    = goerrors.New("request does not match the api schema")
	ErrorServiceNotConfigured = goerrors.New("service not configured")
)

// BadParams marks a binding failure and names the fields it was caused by.
func BadParams(err error) error {
	return fmt.Errorf("%w: %w", ErrorBadParams, bindingViolations(err))
}

func bindingViolations(err error) *quote.InvalidRequestError {
	invalid := &quote.InvalidRequestError{}

	var (
		fieldErrors validator.ValidationErrors
		typeError   *json.UnmarshalTypeError
		syntaxError *json.SyntaxError
	)

	switch {
	case err == nil:
		invalid.Add("body", "is invalid")
	case goerrors.As(err, &fieldErrors):
		for _, fieldError := range fieldErrors {
			invalid.Add(jsonName(fieldError.Field()), ruleMessage(fieldError.Tag()))
		}
	case goerrors.As(err, &typeError) && typeError.Field != "":
		invalid.Add(typeError.Field, typeMessage(typeError.Type))
	case goerrors.As(err, &syntaxError), goerrors.Is(err, io.ErrUnexpectedEOF):
		invalid.Add("body", "is not valid JSON")
	case goerrors.Is(err, io.EOF):
		invalid.Add("body", "is required")
	default:
		invalid.Add("body", err.Error())
	}

	return invalid
}

// jsonName turns a Go field name into the camelCase key the API uses.
func jsonName(field string) string {
	if field == "" {
		return "body"
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func ruleMessage(tag string) string {
	if tag == "required" {
		return "is required"
	}
	return "failed " + tag + " validation"
}

func typeMessage(typ reflect.Type) string {
	if typ == nil {
		return "has an invalid value"
	}
	if typ == reflect.TypeOf(schema.DateTime{}) {
		return "must be an RFC 3339 or local datetime"
	}

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.String:
		return "must be a string"
	}
	return "has an invalid value"
}

// HandleError logs err and aborts with the JSON error envelope.
func HandleError(c *gin.Context, status int, message string, err error) {
	body := schema.ErrorResponse{
		Error: schema.ErrorBody{
			Message: message,
			Details: details(err),
		},
	}

	if value, ok := c.Get("logger"); ok {
		if logger, ok := value.(*zerolog.Logger); ok {
			event := logger.Warn()
			if status >= http.StatusInternalServerError {
				event = logger.Error()
			}
			event.
				Err(err).
				Int("code", status).
				Msg(message)
		}
	}

	c.AbortWithStatusJSON(status, body)
}

// Respond picks the status for a domain error and writes it.
func Respond(c *gin.Context, message string, err error) {
	HandleError(c, Status(err), message, err)
}

func Status(err error) int {
	var unknownVehicle *pricing.UnknownVehicleError

	switch {
	case err == nil:
		return http.StatusOK
	case goerrors.As(err, &unknownVehicle):
		// catalog and rate card disagree, never a client problem
		return http.StatusInternalServerError
	case goerrors.Is(err, quote.ErrInvalidRequest),
		goerrors.Is(err, wizard.ErrInvalidSession),
		goerrors.Is(err, ErrorBadParams),
		goerrors.Is(err, ErrorInvalidIdempotency),
		goerrors.Is(err, ErrorRequestValidation):
		return http.StatusBadRequest
	case goerrors.Is(err, fleet.ErrVehicleNotFound):
		return http.StatusNotFound
	case goerrors.Is(err, booking.ErrSpecialBookingRequired),
		goerrors.Is(err, wizard.ErrInvalidTransition),
		goerrors.Is(err, wizard.ErrStepMismatch),
		goerrors.Is(err, wizard.ErrNotConfirmed),
		goerrors.Is(err, ErrorIdempotencyConflict):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

func details(err error) []schema.ErrorDetail {
	var invalid *quote.InvalidRequestError
	if !goerrors.As(err, &invalid) {
		return nil
	}

	out := make([]schema.ErrorDetail, 0, len(invalid.Violations))
	for _, v := range invalid.Violations {
		out = append(out, schema.ErrorDetail{Field: v.Field, Message: v.Message})
	}
	return out
}
