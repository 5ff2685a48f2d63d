package idempotency

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	platformErrors "bitbucket.org/velvet/chauffeur-hub/internal/platform/errors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	HeaderKey    = "Idempotency-Key"
	maxKeyLength = 255
)

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

type RequestManager interface {
	HandleRequest(context.Context, func() (*Response, error)) (*Response, error)
}

type MiddlewareOptions struct {
	CreateManager func(
		redis *redis.Client,
		log *zerolog.Logger,
		cacheKey string,
	) RequestManager
	RedisClient *redis.Client
}

// CacheKey scopes a client key to the route it was sent to.
func CacheKey(method, route, key string) string {
	return strings.Join([]string{"idempotency", strings.ToLower(method), route, key}, ":")
}

// Middleware makes POST handlers safe to repeat. Requests without an
// Idempotency-Key, or without redis configured, pass straight through.
func Middleware(o MiddlewareOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(HeaderKey))
		if key == "" {
			c.Next()
			return
		}

		if len(key) > maxKeyLength {
			platformErrors.HandleError(c, http.StatusBadRequest, "Idempotency-Key is too long", platformErrors.ErrorInvalidIdempotency)
			return
		}

		if o.RedisClient == nil {
			c.Next()
			return
		}

		log := c.MustGet("logger").(*zerolog.Logger)
		manager := o.CreateManager(o.RedisClient, log, CacheKey(c.Request.Method, c.FullPath(), key))

		requester := func() (*Response, error) {
			bodyWriter := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
			c.Writer = bodyWriter

			c.Next()

			return &Response{
				Code:    c.Writer.Status(),
				Body:    bodyWriter.body.String(),
				Headers: bodyWriter.Header().Clone(),
			}, c.Err()
		}

		response, err := manager.HandleRequest(c.Request.Context(), requester)

		if !c.Writer.Written() {
			if err != nil {
				platformErrors.HandleError(
					c,
					http.StatusConflict,
					"Request with this Idempotency-Key could not be completed",
					platformErrors.ErrorIdempotencyConflict,
				)
				return
			}

			for key, values := range response.Headers {
				for _, value := range values {
					c.Writer.Header().Add(key, value)
				}
			}

			c.Data(response.Code, gin.MIMEJSON, []byte(response.Body))
		}

		c.Abort()
	}
}
