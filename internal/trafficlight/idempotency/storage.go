package idempotency

import (
	"context"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/tools/caching"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/slowlog"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const lockTTL = 1 * time.Minute

type CachedValue struct {
	Code    int                 `json:"code"`
	Headers map[string][]string `json:"headers"`
	Body    string              `json:"body"`
}

type storage struct {
	redis   *redis.Client
	cache   *caching.Cacher
	log     *zerolog.Logger
	slowLog slowlog.Logger
}

func newStorage(redisClient *redis.Client, log *zerolog.Logger, slowLog slowlog.Logger) *storage {
	return &storage{
		redis:   redisClient,
		cache:   caching.NewRedisCache(redisClient),
		log:     log,
		slowLog: slowLog,
	}
}

func (s *storage) AcquireLock(ctx context.Context, lockKey string) (bool, error) {
	return s.redis.SetNX(ctx, lockKey, "", lockTTL).Result()
}

func (s *storage) ReleaseLock(ctx context.Context, lockKey string) {
	s.redis.Del(ctx, lockKey)
}

func (s *storage) StoreResponse(ctx context.Context, responseKey string, response *Response, duration time.Duration) {
	s.slowLog.Start("idempotency:store")
	defer s.slowLog.Stop("idempotency:store")

	err := s.cache.Store(ctx, responseKey, CachedValue{
		Code:    response.Code,
		Body:    response.Body,
		Headers: response.Headers,
	}, duration)
	if err != nil {
		s.log.Err(err).
			Str("key", responseKey).
			Msg("Unable to store idempotent response")
	}
}

func (s *storage) FetchResponse(ctx context.Context, responseKey string) (*CachedValue, error) {
	s.slowLog.Start("idempotency:fetch")
	defer s.slowLog.Stop("idempotency:fetch")

	value := CachedValue{}
	hit, err := s.cache.Fetch(ctx, responseKey, &value)
	if err != nil || !hit {
		return nil, err
	}

	return &value, nil
}
