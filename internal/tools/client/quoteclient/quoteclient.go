package quoteclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/client"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/requesting"
	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

// APIError is a non 2xx answer from the service.
type APIError struct {
	StatusCode int
	Body       schema.ErrorResponse
}

func (e *APIError) Error() string {
	return fmt.Sprintf("quote api returned %d: %s", e.StatusCode, e.Body.Error.Message)
}

// Client talks to the reservation API. Reads are retried with a linear
// backoff, submissions are sent exactly once.
type Client struct {
	baseURL string
	http    *http.Client
	retries int
	backoff time.Duration
	logger  *zerolog.Logger
}

func New(logger *zerolog.Logger, optionFuncs ...client.OptionFunc) (*Client, error) {
	options, err := client.NewOptions(optionFuncs...)
	if err != nil {
		return nil, err
	}

	if options.BaseURL() == "" {
		return nil, fmt.Errorf("quote api base url is required")
	}

	return &Client{
		baseURL: options.BaseURL(),
		retries: options.Retries(),
		backoff: options.Backoff(),
		logger:  logger,
		http: &http.Client{
			Timeout: options.Timeout(),
			Transport: &requesting.InterceptorTransport{
				Transport: http.DefaultTransport,
				Middlewares: []requesting.TransportMiddleware{
					requesting.NewHeaderTransportMiddleware(http.Header{
						"User-Agent":   {options.Name()},
						"Content-Type": {"application/json"},
					}),
					requesting.NewLoggingTransportMiddleware(logger, "chauffeur-hub"),
				},
			},
		},
	}, nil
}

func (c *Client) GetQuote(ctx context.Context, params schema.QuoteRequestParams) (schema.QuoteResponse, error) {
	var response schema.QuoteResponse
	err := c.do(ctx, http.MethodPost, "/quote", nil, params, &response, true)
	return response, err
}

func (c *Client) ListVehicles(ctx context.Context, params schema.VehiclesRequestParams) (schema.VehiclesResponse, error) {
	values, err := query.Values(params)
	if err != nil {
		return schema.VehiclesResponse{}, err
	}

	var response schema.VehiclesResponse
	err = c.do(ctx, http.MethodGet, "/vehicles?"+values.Encode(), nil, nil, &response, true)
	return response, err
}

func (c *Client) ListPackages(ctx context.Context) (schema.PackagesResponse, error) {
	var response schema.PackagesResponse
	err := c.do(ctx, http.MethodGet, "/packages", nil, nil, &response, true)
	return response, err
}

// CreateBooking is never retried. Pass an idempotency key to make a manual
// resubmission safe.
func (c *Client) CreateBooking(ctx context.Context, params schema.BookingRequestParams, idempotencyKey string) (schema.BookingResponse, error) {
	var response schema.BookingResponse
	err := c.do(ctx, http.MethodPost, "/booking", idempotencyHeader(idempotencyKey), params, &response, false)
	return response, err
}

func (c *Client) CreateSpecialBooking(ctx context.Context, params schema.SpecialBookingRequestParams, idempotencyKey string) (schema.ReferenceResponse, error) {
	var response schema.ReferenceResponse
	err := c.do(ctx, http.MethodPost, "/special", idempotencyHeader(idempotencyKey), params, &response, false)
	return response, err
}

func (c *Client) CreateMembership(ctx context.Context, params schema.MembershipRequestParams, idempotencyKey string) (schema.ReferenceResponse, error) {
	var response schema.ReferenceResponse
	err := c.do(ctx, http.MethodPost, "/membership", idempotencyHeader(idempotencyKey), params, &response, false)
	return response, err
}

func idempotencyHeader(key string) http.Header {
	if key == "" {
		return nil
	}
	return http.Header{"Idempotency-Key": {key}}
}

func (c *Client) do(ctx context.Context, method, path string, headers http.Header, body any, out any, retry bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	attempts := 1
	if retry {
		attempts += c.retries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			wait := time.Duration(attempt) * c.backoff
			c.logger.Warn().
				Err(lastErr).
				Int("attempt", attempt+1).
				Float64("backoff", wait.Seconds()).
				Str("path", path).
				Msg("Retrying quote api request")

			if err := sleep(ctx, wait); err != nil {
				return err
			}
		}

		retryable, err := c.send(ctx, method, path, headers, payload, out)
		if err == nil {
			return nil
		}

		lastErr = err
		if !retryable {
			break
		}
	}

	return lastErr
}

func (c *Client) send(ctx context.Context, method, path string, headers http.Header, payload []byte, out any) (bool, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return false, err
	}
	for key, values := range headers {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}

	response, requestErr := requesting.RequestErrors(c.http.Do(request))
	if requestErr != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if requestErr.Response != nil {
			return requestErr.Retryable(), apiError(requestErr.Response)
		}
		return requestErr.Retryable(), requestErr
	}
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decoding %s response: %w", path, err)
	}

	return false, nil
}

func apiError(response *http.Response) error {
	defer response.Body.Close()

	e := &APIError{StatusCode: response.StatusCode}
	_ = json.NewDecoder(response.Body).Decode(&e.Body)

	return e
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
