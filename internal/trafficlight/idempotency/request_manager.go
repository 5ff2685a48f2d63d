package idempotency

import (
	"context"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/tools/slowlog"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	ReplayedHeader = "Idempotent-Replayed"

	successTTL = 24 * time.Hour
	failureTTL = 1 * time.Minute
	waitStep   = 400 * time.Millisecond
)

type Response struct {
	Code    int
	Headers map[string][]string
	Body    string
}

type Storage interface {
	AcquireLock(ctx context.Context, lockKey string) (bool, error)
	ReleaseLock(ctx context.Context, lockKey string)
	StoreResponse(ctx context.Context, responseKey string, response *Response, duration time.Duration)
	FetchResponse(ctx context.Context, responseKey string) (*CachedValue, error)
}

type requestManager struct {
	cache    Storage
	log      *zerolog.Logger
	slowLog  slowlog.Logger
	cacheKey string
	waitStep time.Duration
}

func isStatusCodeAcceptable(code int) bool {
	return code >= 200 && code < 300
}

func (m *requestManager) executeAndStore(
	responseKey string,
	requester func() (*Response, error),
) (*Response, error) {
	m.slowLog.Start("idempotency:executeAndStore")
	defer m.slowLog.Stop("idempotency:executeAndStore")

	response, err := requester()

	if err != nil {
		m.cache.ReleaseLock(context.Background(), m.cacheKey)
		m.log.Err(err).Msg("Unable to execute idempotent request")
		return nil, err
	}

	duration := successTTL
	if !isStatusCodeAcceptable(response.Code) {
		duration = failureTTL
	}

	m.cache.StoreResponse(context.Background(), responseKey, response, duration)
	m.cache.ReleaseLock(context.Background(), m.cacheKey)

	return response, nil
}

func (m *requestManager) executeOrWait(ctx context.Context, requester func() (*Response, error)) (*Response, error) {
	responseKey := "res:" + m.cacheKey

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cached, err := m.cache.FetchResponse(ctx, responseKey)
		if err != nil {
			m.log.Err(err).
				Str("label", "idempotency").
				Str("key", responseKey).
				Msg("Error fetching stored response, executing request")

			return requester()
		}

		if cached != nil {
			m.log.Info().
				Str("label", "idempotency").
				Bool("hit", true).
				Str("key", m.cacheKey).
				Msg("Replayed stored response")

			headers := cached.Headers
			if headers == nil {
				headers = make(map[string][]string)
			}
			headers[ReplayedHeader] = []string{"true"}

			return &Response{
				Code:    cached.Code,
				Body:    cached.Body,
				Headers: headers,
			}, nil
		}

		acquired, err := m.cache.AcquireLock(ctx, m.cacheKey)
		if err != nil || acquired {
			return m.executeAndStore(responseKey, requester)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.waitStep):
		}
	}
}

func (m *requestManager) HandleRequest(ctx context.Context, requester func() (*Response, error)) (*Response, error) {
	m.slowLog.Start("idempotency:HandleRequest")
	defer m.slowLog.Stop("idempotency:HandleRequest")
	return m.executeOrWait(ctx, requester)
}

func NewRequestManager(
	redis *redis.Client,
	log *zerolog.Logger,
	cacheKey string,
) RequestManager {
	logWithKey := log.With().Str("idempotencyKey", cacheKey).Logger()
	slowLog := slowlog.CreateLogger(&logWithKey)

	return &requestManager{
		cacheKey: cacheKey,
		cache:    newStorage(redis, &logWithKey, slowLog),
		log:      &logWithKey,
		slowLog:  slowLog,
		waitStep: waitStep,
	}
}
