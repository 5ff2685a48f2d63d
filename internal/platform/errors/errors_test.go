package errors_test

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitbucket.org/velvet/chauffeur-hub/internal/booking"
	"bitbucket.org/velvet/chauffeur-hub/internal/booking/wizard"
	"bitbucket.org/velvet/chauffeur-hub/internal/fleet"
	platformErrors "bitbucket.org/velvet/chauffeur-hub/internal/platform/errors"
	"bitbucket.org/velvet/chauffeur-hub/internal/pricing"
	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	invalid := &quote.InvalidRequestError{}
	invalid.Add("passengers", "must be between 1 and 13")

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid request", invalid, http.StatusBadRequest},
		{"wrapped invalid request", fmt.Errorf("quote: %w", invalid), http.StatusBadRequest},
		{"unknown vehicle in booking", &fleet.NotFoundError{Code: "X"}, http.StatusNotFound},
		{"special booking required", &booking.SpecialBookingRequiredError{VehicleCode: "RR_GHOST"}, http.StatusConflict},
		{"wizard transition", &wizard.TransitionError{From: wizard.StepDetails, Action: wizard.ActionBack}, http.StatusConflict},
		{"bad session", wizard.ErrInvalidSession, http.StatusBadRequest},
		{"binding failure", platformErrors.BadParams(goerrors.New("EOF")), http.StatusBadRequest},
		{"pricing integrity", &pricing.UnknownVehicleError{Code: "X", Mode: pricing.ModeNormal}, http.StatusInternalServerError},
		{"anything else", goerrors.New("boom"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, platformErrors.Status(test.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	invalid := &quote.InvalidRequestError{}
	invalid.Add("packageCode", "is required for HOURLY mode")

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	logger := zerolog.Nop()
	c.Set("logger", &logger)

	platformErrors.Respond(c, "Failed computing quote", invalid)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.True(t, c.IsAborted())

	var body schema.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Failed computing quote", body.Error.Message)
	assert.Equal(t, []schema.ErrorDetail{{Field: "packageCode", Message: "is required for HOURLY mode"}}, body.Error.Details)
}

func TestHandleErrorWithoutLogger(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	platformErrors.HandleError(c, http.StatusInternalServerError, "Unknown error", nil)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":{"message":"Unknown error"}}`, recorder.Body.String())
}

func TestBadParamsDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bindJSON := func(body string, target any) error {
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = request
		return c.ShouldBind(target)
	}

	tests := []struct {
		name     string
		err      error
		expected []schema.ErrorDetail
	}{
		{
			name:     "wrong type names the field",
			err:      bindJSON(`{"passengers":"two"}`, &schema.QuoteRequestParams{}),
			expected: []schema.ErrorDetail{{Field: "passengers", Message: "must be a number"}},
		},
		{
			name:     "malformed datetime names the field",
			err:      bindJSON(`{"datetime":"next tuesday"}`, &schema.QuoteRequestParams{}),
			expected: []schema.ErrorDetail{{Field: "datetime", Message: "must be an RFC 3339 or local datetime"}},
		},
		{
			name:     "missing required field",
			err:      bindJSON(`{"details":{},"payment":{}}`, &schema.BookingRequestParams{}),
			expected: []schema.ErrorDetail{{Field: "vehicleCode", Message: "is required"}},
		},
		{
			name:     "truncated body",
			err:      bindJSON(`{"pickup":`, &schema.QuoteRequestParams{}),
			expected: []schema.ErrorDetail{{Field: "body", Message: "is not valid JSON"}},
		},
		{
			name:     "empty body",
			err:      bindJSON(``, &schema.QuoteRequestParams{}),
			expected: []schema.ErrorDetail{{Field: "body", Message: "is required"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Error(t, test.err)

			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			err := platformErrors.BadParams(test.err)
			assert.ErrorIs(t, err, platformErrors.ErrorBadParams)
			platformErrors.HandleError(c, http.StatusBadRequest, "Failed to bind request params", err)

			var body schema.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, test.expected, body.Error.Details)
		})
	}
}
