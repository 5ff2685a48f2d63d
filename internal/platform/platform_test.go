package platform_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/booking"
	"bitbucket.org/velvet/chauffeur-hub/internal/booking/wizard"
	"bitbucket.org/velvet/chauffeur-hub/internal/fleet"
	"bitbucket.org/velvet/chauffeur-hub/internal/platform"
	"bitbucket.org/velvet/chauffeur-hub/internal/pricing"
	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.March, 1, 4, 30, 0, 0, time.UTC)

func newRouter(t *testing.T, withWizard bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog, err := fleet.DefaultCatalog()
	require.NoError(t, err)

	service := booking.New(
		quote.NewEngine(catalog, pricing.DefaultTable()),
		booking.WithClock(func() time.Time { return now }),
	)

	services := platform.Services{Reservations: service}
	if withWizard {
		services.Wizard = wizard.NewFlow(service, service, wizard.NewCodec([]byte("test-secret"), time.Hour))
	}

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("logger", &log)
	})
	platform.RegisterRoutes(router, services, nil)

	return router
}

func serve(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		encoded, _ := json.Marshal(b)
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")

	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func decode[T any](t *testing.T, response *httptest.ResponseRecorder) T {
	var value T
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &value), response.Body.String())
	return value
}

func quoteBody(lead time.Duration, passengers int) map[string]any {
	return map[string]any{
		"pickup":       "Bandra West, Mumbai",
		"drop":         "Mumbai Airport T2",
		"datetime":     now.Add(lead).Format(time.RFC3339),
		"passengers":   passengers,
		"luggageCount": 1,
		"needCarrier":  false,
		"mode":         "NORMAL",
	}
}

func TestQuoteRoute(t *testing.T) {
	router := newRouter(t, false)

	t.Run("prices every vehicle", func(t *testing.T) {
		response := serve(router, http.MethodPost, "/api/quote", quoteBody(2*time.Hour, 2))
		require.Equal(t, http.StatusOK, response.Code)

		body := decode[schema.QuoteResponse](t, response)
		assert.Len(t, body.Vehicles, 11)
		assert.Equal(t, "INR", body.Currency)

		var ghost schema.QuoteLine
		for _, line := range body.Vehicles {
			if line.VehicleCode == "RR_GHOST" {
				ghost = line
			}
		}
		require.Equal(t, "RR_GHOST", ghost.VehicleCode)
		assert.False(t, ghost.DirectEligible)
		assert.Equal(t, "72 hrs prior", *ghost.DisabledReason)
	})

	t.Run("reports violated fields", func(t *testing.T) {
		response := serve(router, http.MethodPost, "/api/quote", quoteBody(2*time.Hour, 0))
		require.Equal(t, http.StatusBadRequest, response.Code)

		body := decode[schema.ErrorResponse](t, response)
		require.Len(t, body.Error.Details, 1)
		assert.Equal(t, "passengers", body.Error.Details[0].Field)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		response := serve(router, http.MethodPost, "/api/quote", `{"pickup":`)

		require.Equal(t, http.StatusBadRequest, response.Code)
		body := decode[schema.ErrorResponse](t, response)
		assert.Equal(t, "Failed to bind request params", body.Error.Message)
		assert.Equal(t, []schema.ErrorDetail{{Field: "body", Message: "is not valid JSON"}}, body.Error.Details)
	})

	t.Run("names fields that fail to bind", func(t *testing.T) {
		tests := []struct {
			name  string
			key   string
			value any
		}{
			{"wrong type", "passengers", "two"},
			{"malformed datetime", "datetime", "next tuesday"},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				payload := quoteBody(2*time.Hour, 2)
				payload[test.key] = test.value

				response := serve(router, http.MethodPost, "/api/quote", payload)
				require.Equal(t, http.StatusBadRequest, response.Code)

				body := decode[schema.ErrorResponse](t, response)
				require.Len(t, body.Error.Details, 1)
				assert.Equal(t, test.key, body.Error.Details[0].Field)
			})
		}
	})
}

func TestBookingRoutes(t *testing.T) {
	router := newRouter(t, false)

	bookingBody := func(vehicle string, lead time.Duration) map[string]any {
		return map[string]any{
			"details": map[string]any{
				"pickup":      "Colaba, Mumbai",
				"datetime":    now.Add(lead).Format(time.RFC3339),
				"passengers":  2,
				"luggage":     1,
				"needCarrier": false,
				"mode":        "NORMAL",
			},
			"vehicleCode": vehicle,
			"payment": map[string]any{
				"method":      "CASH",
				"gstRequired": false,
				"acceptTerms": true,
			},
		}
	}

	t.Run("direct booking", func(t *testing.T) {
		response := serve(router, http.MethodPost, "/api/booking", bookingBody("MERC_E", 3*time.Hour))
		require.Equal(t, http.StatusOK, response.Code)

		body := decode[schema.BookingResponse](t, response)
		assert.True(t, strings.HasPrefix(body.BookingId, "VE"))
		assert.Nil(t, body.GatewayOrderId)
	})

	t.Run("special booking required", func(t *testing.T) {
		response := serve(router, http.MethodPost, "/api/booking", bookingBody("RR_GHOST", 3*time.Hour))
		assert.Equal(t, http.StatusConflict, response.Code)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		response := serve(router, http.MethodPost, "/api/booking", bookingBody("TESLA_X", 3*time.Hour))
		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("membership", func(t *testing.T) {
		response := serve(router, http.MethodPost, "/api/membership", map[string]any{
			"name":  "Asha Rao",
			"phone": "+919876543210",
			"plan":  "30_RIDES",
		})
		require.Equal(t, http.StatusOK, response.Code)

		body := decode[schema.ReferenceResponse](t, response)
		assert.True(t, strings.HasPrefix(body.RefId, "MEM"))
	})
}

func TestCatalogRoutes(t *testing.T) {
	router := newRouter(t, false)

	t.Run("vehicles by category", func(t *testing.T) {
		response := serve(router, http.MethodGet, "/api/vehicles?category=LUXURY_TRAVEL", nil)
		require.Equal(t, http.StatusOK, response.Code)

		body := decode[schema.VehiclesResponse](t, response)
		assert.Len(t, body.Vehicles, 3)
	})

	t.Run("packages", func(t *testing.T) {
		response := serve(router, http.MethodGet, "/api/packages", nil)
		require.Equal(t, http.StatusOK, response.Code)

		body := decode[schema.PackagesResponse](t, response)
		assert.NotEmpty(t, body.Packages)
		assert.Equal(t, "INR", body.Currency)
	})
}

func TestSessionRoutes(t *testing.T) {
	t.Run("start and refuse going back from details", func(t *testing.T) {
		router := newRouter(t, true)

		started := serve(router, http.MethodPost, "/api/session", nil)
		require.Equal(t, http.StatusOK, started.Code)

		session := decode[wizard.Response](t, started)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, wizard.StepDetails, session.Session.Step)

		back := serve(router, http.MethodPost, "/api/session/back", map[string]any{"token": session.Token})
		assert.Equal(t, http.StatusConflict, back.Code)

		receipt := serve(router, http.MethodPost, "/api/session/receipt", map[string]any{"token": session.Token})
		assert.Equal(t, http.StatusConflict, receipt.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		router := newRouter(t, true)

		response := serve(router, http.MethodPost, "/api/session/next", map[string]any{"token": "not-a-token"})
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("not configured", func(t *testing.T) {
		router := newRouter(t, false)

		response := serve(router, http.MethodPost, "/api/session", nil)
		assert.Equal(t, http.StatusNotImplemented, response.Code)
	})
}
