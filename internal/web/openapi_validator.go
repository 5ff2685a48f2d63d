package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	platformErrors "bitbucket.org/velvet/chauffeur-hub/internal/platform/errors"
	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
)

// OpenapiValidator checks requests against the api document. Routes the
// document does not describe are left to the router.
func OpenapiValidator(document []byte) (gin.HandlerFunc, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("openapi: load: %w", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("openapi: validate: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi: router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options:    options,
		}

		if err := openapi3filter.ValidateRequest(c.Request.Context(), input); err != nil {
			platformErrors.HandleError(
				c,
				http.StatusBadRequest,
				"Request does not match the api schema",
				fmt.Errorf("%w: %w", platformErrors.ErrorRequestValidation, schemaViolations(err)),
			)
		}
	}, nil
}

// schemaViolations names the parameter or body property a request failed on.
func schemaViolations(err error) *quote.InvalidRequestError {
	field, message := "body", err.Error()

	var requestError *openapi3filter.RequestError
	if errors.As(err, &requestError) {
		if requestError.Parameter != nil {
			field = requestError.Parameter.Name
		}
		if requestError.Reason != "" {
			message = requestError.Reason
		}
		if requestError.Err != nil {
			err = requestError.Err
		}
	}

	var schemaError *openapi3.SchemaError
	if errors.As(err, &schemaError) {
		if pointer := schemaError.JSONPointer(); len(pointer) > 0 {
			field = strings.Join(pointer, ".")
		}
		if schemaError.Reason != "" {
			message = schemaError.Reason
		}
	}

	invalid := &quote.InvalidRequestError{}
	invalid.Add(field, message)
	return invalid
}
