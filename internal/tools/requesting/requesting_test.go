package requesting_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/tools/requesting"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestErrors(t *testing.T) {
	tests := []struct {
		name          string
		response      *http.Response
		err           error
		expectedKind  requesting.ErrorKind
		expectedRetry bool
	}{
		{"ok", &http.Response{StatusCode: 200}, nil, "", false},
		{"bad request", &http.Response{StatusCode: 400}, nil, requesting.ErrorKindStatus, false},
		{"conflict", &http.Response{StatusCode: 409}, nil, requesting.ErrorKindStatus, false},
		{"server error", &http.Response{StatusCode: 503}, nil, requesting.ErrorKindStatus, true},
		{"timeout", nil, context.DeadlineExceeded, requesting.ErrorKindTimeout, true},
		{"connection", nil, errors.New("connection refused"), requesting.ErrorKindConnection, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			response, err := requesting.RequestErrors(test.response, test.err)

			if test.expectedKind == "" {
				assert.Nil(t, err)
				assert.Equal(t, test.response, response)
				return
			}

			require.NotNil(t, err)
			assert.Nil(t, response)
			assert.Equal(t, test.expectedKind, err.Kind)
			assert.Equal(t, test.expectedRetry, err.Retryable())
		})
	}
}

func TestTransports(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-seen-agent", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	client := &http.Client{
		Timeout: time.Second,
		Transport: &requesting.InterceptorTransport{
			Transport: http.DefaultTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewHeaderTransportMiddleware(http.Header{"User-Agent": {"quote-client"}}),
				requesting.NewLoggingTransportMiddleware(&log, "chauffeur-hub"),
			},
		},
	}

	response, err := client.Get(server.URL + "/api/health")
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusAccepted, response.StatusCode)
	assert.Equal(t, "quote-client", response.Header.Get("x-seen-agent"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "outgoing-request", line["label"])
	assert.Equal(t, "chauffeur-hub", line["destination"])
	assert.Equal(t, float64(http.StatusAccepted), line["code"])
}
