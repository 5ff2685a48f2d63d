package web

import (
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/trafficlight/idempotency"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Cors allows the configured origins, or every origin when none are configured.
func Cors(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			CorrelationIdHeader,
			idempotency.HeaderKey,
		},
		ExposeHeaders: []string{
			"Content-Disposition",
			CorrelationIdHeader,
			idempotency.ReplayedHeader,
		},
		MaxAge: 12 * time.Hour,
	}

	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}

	return cors.New(config)
}
