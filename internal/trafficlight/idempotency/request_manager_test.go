package idempotency

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/tools/slowlog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type storageMock struct {
	Storage
	acquireLockMock   func(ctx context.Context, lockKey string) (bool, error)
	releaseLockMock   func(ctx context.Context, lockKey string)
	storeResponseMock func(ctx context.Context, responseKey string, response *Response, duration time.Duration)
	fetchResponseMock func(ctx context.Context, responseKey string) (*CachedValue, error)
}

func (s *storageMock) AcquireLock(ctx context.Context, lockKey string) (bool, error) {
	return s.acquireLockMock(ctx, lockKey)
}

func (s *storageMock) ReleaseLock(ctx context.Context, lockKey string) {
	s.releaseLockMock(ctx, lockKey)
}

func (s *storageMock) StoreResponse(ctx context.Context, responseKey string, response *Response, duration time.Duration) {
	s.storeResponseMock(ctx, responseKey, response, duration)
}

func (s *storageMock) FetchResponse(ctx context.Context, responseKey string) (*CachedValue, error) {
	return s.fetchResponseMock(ctx, responseKey)
}

func createManager(storage *storageMock) RequestManager {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	return &requestManager{
		cache:    storage,
		log:      &log,
		slowLog:  slowlog.CreateLogger(&log),
		cacheKey: "idempotency:post:/api/booking:abc",
		waitStep: time.Millisecond,
	}
}

func TestRequestManager(t *testing.T) {
	body := `{"bookingId":"VEMJUOHS00"}`

	requester := func() (*Response, error) {
		return &Response{
			Code:    http.StatusCreated,
			Body:    body,
			Headers: map[string][]string{"Content-Type": {"application/json"}},
		}, nil
	}

	t.Run("executes and stores the first request", func(t *testing.T) {
		stored := make(chan time.Duration, 1)

		manager := createManager(&storageMock{
			fetchResponseMock: func(ctx context.Context, responseKey string) (*CachedValue, error) {
				assert.Equal(t, "res:idempotency:post:/api/booking:abc", responseKey)
				return nil, nil
			},
			acquireLockMock: func(ctx context.Context, lockKey string) (bool, error) {
				return true, nil
			},
			storeResponseMock: func(ctx context.Context, responseKey string, response *Response, duration time.Duration) {
				stored <- duration
			},
			releaseLockMock: func(ctx context.Context, lockKey string) {},
		})

		response, err := manager.HandleRequest(context.TODO(), requester)

		assert.NoError(t, err)
		assert.Equal(t, 24*time.Hour, <-stored)
		assert.Equal(t, http.StatusCreated, response.Code)
		assert.Equal(t, body, response.Body)
		assert.Empty(t, response.Headers[ReplayedHeader])
	})

	t.Run("replays a stored response", func(t *testing.T) {
		manager := createManager(&storageMock{
			fetchResponseMock: func(ctx context.Context, responseKey string) (*CachedValue, error) {
				return &CachedValue{Code: http.StatusCreated, Body: "stored"}, nil
			},
		})

		response, err := manager.HandleRequest(context.TODO(), func() (*Response, error) {
			t.Fatal("handler must not run on replay")
			return nil, nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "stored", response.Body)
		assert.Equal(t, []string{"true"}, response.Headers[ReplayedHeader])
	})

	t.Run("waits for a concurrent request to finish", func(t *testing.T) {
		finished := make(chan string, 1)

		manager := createManager(&storageMock{
			fetchResponseMock: func(ctx context.Context, responseKey string) (*CachedValue, error) {
				select {
				case value := <-finished:
					return &CachedValue{Code: http.StatusCreated, Body: value}, nil
				default:
					return nil, nil
				}
			},
			acquireLockMock: func(ctx context.Context, lockKey string) (bool, error) {
				finished <- "from the other request"
				return false, nil
			},
		})

		response, err := manager.HandleRequest(context.TODO(), requester)

		assert.NoError(t, err)
		assert.Equal(t, "from the other request", response.Body)
	})

	t.Run("gives up waiting when the context ends", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		manager := createManager(&storageMock{
			fetchResponseMock: func(ctx context.Context, responseKey string) (*CachedValue, error) {
				return nil, nil
			},
			acquireLockMock: func(ctx context.Context, lockKey string) (bool, error) {
				cancel()
				return false, nil
			},
		})

		response, err := manager.HandleRequest(ctx, requester)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, response)
	})

	t.Run("releases the lock", func(t *testing.T) {
		tests := []struct {
			name             string
			requester        func() (*Response, error)
			expectedStoreTTL *time.Duration
			expectedResponse *Response
			expectedError    error
		}{
			{
				name: "handler failed",
				requester: func() (*Response, error) {
					return nil, errors.New("connection reset")
				},
				expectedError: errors.New("connection reset"),
			},
			{
				name: "client error is kept briefly",
				requester: func() (*Response, error) {
					return &Response{Code: http.StatusBadRequest, Body: "error"}, nil
				},
				expectedResponse: &Response{Code: http.StatusBadRequest, Body: "error"},
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				released := make(chan bool, 1)

				manager := createManager(&storageMock{
					fetchResponseMock: func(ctx context.Context, responseKey string) (*CachedValue, error) {
						return nil, nil
					},
					acquireLockMock: func(ctx context.Context, lockKey string) (bool, error) {
						return true, nil
					},
					storeResponseMock: func(ctx context.Context, responseKey string, response *Response, duration time.Duration) {
						if test.expectedError != nil {
							t.Error("failed requests must not be stored")
						}
						assert.Equal(t, time.Minute, duration)
					},
					releaseLockMock: func(ctx context.Context, lockKey string) {
						released <- true
					},
				})

				response, err := manager.HandleRequest(context.TODO(), test.requester)

				assert.True(t, <-released)
				assert.Equal(t, test.expectedError, err)
				assert.Equal(t, test.expectedResponse, response)
			})
		}
	})

	t.Run("passes through when redis is down", func(t *testing.T) {
		tests := []struct {
			name    string
			storage *storageMock
		}{
			{
				name: "fetch fails",
				storage: &storageMock{
					fetchResponseMock: func(ctx context.Context, responseKey string) (*CachedValue, error) {
						return nil, errors.New("connection refused")
					},
				},
			},
			{
				name: "lock fails",
				storage: &storageMock{
					fetchResponseMock: func(ctx context.Context, responseKey string) (*CachedValue, error) {
						return nil, nil
					},
					acquireLockMock: func(ctx context.Context, lockKey string) (bool, error) {
						return false, errors.New("connection refused")
					},
					storeResponseMock: func(ctx context.Context, responseKey string, response *Response, duration time.Duration) {},
					releaseLockMock:   func(ctx context.Context, lockKey string) {},
				},
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				response, err := createManager(test.storage).HandleRequest(context.TODO(), requester)

				assert.NoError(t, err)
				assert.Equal(t, http.StatusCreated, response.Code)
				assert.Equal(t, body, response.Body)
			})
		}
	})
}
