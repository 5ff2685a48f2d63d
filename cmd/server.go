//go:build !integration

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitbucket.org/velvet/chauffeur-hub/internal/booking"
	"bitbucket.org/velvet/chauffeur-hub/internal/booking/wizard"
	"bitbucket.org/velvet/chauffeur-hub/internal/config"
	"bitbucket.org/velvet/chauffeur-hub/internal/fleet"
	"bitbucket.org/velvet/chauffeur-hub/internal/platform"
	"bitbucket.org/velvet/chauffeur-hub/internal/pricing"
	"bitbucket.org/velvet/chauffeur-hub/internal/quote"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/logger"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/redisfactory"
	"bitbucket.org/velvet/chauffeur-hub/internal/web"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	stop := make(chan os.Signal, 1)

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	return runServer(httpServer, logger, stop)
}

// runServer serves until the listener fails or stop fires. A shutdown
// requested through stop is a clean exit.
func runServer(httpServer *http.Server, logger *zerolog.Logger, stop <-chan os.Signal) int {
	done := make(chan error, 1)
	drained := make(chan struct{})
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		if _, ok := <-stop; !ok {
			return
		}
		logger.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Warn().Err(err).Msg("Shutdown did not drain")
		}
		close(drained)
	}()

	err := <-done
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	// ListenAndServe returns as soon as Shutdown starts
	<-drained
	return 0
}

func buildServices(cfg config.Config) (platform.Services, error) {
	catalog, err := fleet.DefaultCatalog()
	if err != nil {
		return platform.Services{}, err
	}

	table := pricing.DefaultTable()
	if err := table.Validate(catalog.Codes()); err != nil {
		return platform.Services{}, fmt.Errorf("rate card does not cover the catalog: %w", err)
	}

	engine := quote.NewEngine(catalog, table, quote.WithCacheTTL(cfg.QuoteCacheTTLSec))
	service := booking.New(engine)
	flow := wizard.NewFlow(service, service, wizard.NewCodec([]byte(cfg.SessionSecret), cfg.SessionTTL))

	return platform.Services{
		Reservations: service,
		Wizard:       flow,
	}, nil
}

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	services, err := buildServices(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to build services")
	}

	redisFactory, err := redisfactory.New(cfg.IdempotencyRedisURI)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid IDEMPOTENCY_REDIS_URI")
	}

	if redisFactory.IdempotencyClient() == nil {
		log.Warn().Msg("IDEMPOTENCY_REDIS_URI not set, Idempotency-Key is ignored")
	}

	appRouter := web.SetupRouter(log, cfg, services, redisFactory)

	var host string
	if os.Getenv("TEST") == "true" {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", host, cfg.Port),
		Handler:           appRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	code := serverApp(httpServer, log)
	_ = redisFactory.Close()
	os.Exit(code)
}
