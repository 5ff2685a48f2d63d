package web

import (
	"net/http"
	"os"

	"bitbucket.org/velvet/chauffeur-hub/internal/config"
	"bitbucket.org/velvet/chauffeur-hub/internal/platform"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/redisfactory"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func SetupRouter(
	log *zerolog.Logger,
	cfg config.Config,
	services platform.Services,
	redisFactory *redisfactory.Factory,
) *gin.Engine {
	startTime := CurrentTimeFunc()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(Cors(cfg.AllowedOrigins()))

	openApiContent, err := os.ReadFile(cfg.OpenAPILocation)
	if err != nil {
		log.Warn().
			Err(err).
			Str("location", cfg.OpenAPILocation).
			Msg("Api document not found, request validation disabled")
	} else {
		validator, err := OpenapiValidator(openApiContent)
		if err != nil {
			log.Error().
				Err(err).
				Msg("Api document is invalid, request validation disabled")
		} else {
			router.Use(validator)
		}
	}

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: CurrentTimeFunc().Sub(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthResponse{
			Status:    "ok",
			Timestamp: CurrentTimeFunc().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		})
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		if openApiContent == nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "application/json", openApiContent)
	})

	pprof.Register(router)

	platform.RegisterRoutes(router, services, redisFactory)

	return router
}
