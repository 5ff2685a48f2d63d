package caching

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type Engine interface {
	Store(ctx context.Context, key string, value any, ttl time.Duration) error
	// Fetch returns nil without error on a miss.
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// Cacher stores JSON values deflated.
type Cacher struct {
	engine Engine
}

func NewRedisCache(redisClient *redis.Client) *Cacher {
	return &Cacher{
		engine: &redisCache{
			redis: redisClient,
		},
	}
}

func NewCache(engine Engine) *Cacher {
	return &Cacher{engine: engine}
}

// Encode is the stored representation of value.
func Encode(value any) ([]byte, error) {
	bytes, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	return deflate(bytes)
}

func deflate(uncompressed []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, _ := flate.NewWriter(&buffer, flate.BestSpeed)

	_, err := writer.Write(uncompressed)
	if err != nil {
		return nil, err
	}

	err = writer.Close()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func inflate(compressed []byte) ([]byte, error) {
	buffer := bytes.NewReader(compressed)
	reader := flate.NewReader(buffer)
	defer reader.Close()

	var out bytes.Buffer
	_, err := out.ReadFrom(reader)
	if err != nil {
		return []byte{}, err
	}

	return out.Bytes(), nil
}

func (c *Cacher) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	compressed, err := Encode(value)
	if err != nil {
		return err
	}

	return c.engine.Store(ctx, key, compressed, ttl)
}

// Fetch decodes the value under key into destination. A miss is (false, nil).
func (c *Cacher) Fetch(ctx context.Context, key string, destination any) (bool, error) {
	value, err := c.engine.Fetch(ctx, key)
	if err != nil {
		return false, err
	}

	if value == nil {
		return false, nil
	}

	uncompressed, err := inflate(value)
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(uncompressed, destination); err != nil {
		return false, err
	}

	return true, nil
}
