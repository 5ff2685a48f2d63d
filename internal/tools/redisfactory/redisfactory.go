package redisfactory

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Factory owns the redis connections of the service. A connection whose URI
// is not configured stays nil and the features built on it are skipped.
type Factory struct {
	idempotency *redis.Client
}

func New(idempotencyURI string) (*Factory, error) {
	client, err := newClient(idempotencyURI)
	if err != nil {
		return nil, err
	}

	return &Factory{
		idempotency: client,
	}, nil
}

func newClient(uri string) (*redis.Client, error) {
	if uri == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return redis.NewClient(opt), nil
}

func (f *Factory) IdempotencyClient() *redis.Client {
	if f == nil {
		return nil
	}
	return f.idempotency
}

func (f *Factory) Close() error {
	if f == nil || f.idempotency == nil {
		return nil
	}
	return f.idempotency.Close()
}
