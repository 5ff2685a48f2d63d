package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func OperationLogger(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := c.MustGet("logger").(*zerolog.Logger)

		operationLogger := logger.
			With().
			Str("operation", operation).
			Str("operationId", uuid.New().String()).
			Logger()

		c.Set("logger", &operationLogger)
	}
}
