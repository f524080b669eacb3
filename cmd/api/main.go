// Package main provides the entrypoint for the Legwise API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/legwise/legwise/internal/api"
	"github.com/legwise/legwise/internal/api/middleware"
	"github.com/legwise/legwise/internal/catalog"
	"github.com/legwise/legwise/internal/config"
	"github.com/legwise/legwise/internal/featureflags"
	"github.com/legwise/legwise/internal/journey"
	"github.com/legwise/legwise/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "legwise-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Legwise API")

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.OTelEnabled,
		SampleRatio:    cfg.OTelSampleRatio,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.OTelEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Float64("sample_ratio", cfg.OTelSampleRatio).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Load the catalog; an invalid one stops startup
	cat, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		log.Error().Err(err).Str("catalog_file", cfg.CatalogFile).Msg("failed to load catalog")
		os.Exit(1)
	}
	log.Info().
		Str("catalog_file", cfg.CatalogFile).
		Int("first_mile", len(cat.FirstMile)).
		Int("last_mile", len(cat.LastMile)).
		Msg("catalog loaded")

	planner := journey.NewPlanner(journey.PlannerConfig{
		Catalog: cat,
		Logger:  log,
	})

	// Initialize feature flags: defaults, then FEATURE_FLAGS, then FEATURE_FLAGS_FILE
	ffService := featureflags.NewService(featureflags.ServiceConfig{
		Repository: featureflags.NewInMemoryRepository(),
		Logger:     log,
		CacheTTL:   cfg.FlagCacheTTL,
	})
	if err := reloadFlags(ctx, ffService, cfg); err != nil {
		log.Error().Err(err).Msg("failed to load feature flags")
		os.Exit(1)
	}
	log.Info().
		Str("flags_file", cfg.FeatureFlagsFile).
		Msg("feature flags service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:            Version,
		BuildTime:          BuildTime,
		Logger:             log,
		ServiceName:        serviceName,
		Metrics:            metrics,
		Planner:            planner,
		FeatureFlagService: ffService,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequireTLS:         cfg.RequireTLS,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal; SIGHUP reloads feature flags
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

wait:
	for {
		select {
		case <-hup:
			if err := reloadFlags(ctx, ffService, cfg); err != nil {
				log.Error().Err(err).Msg("feature flag reload failed, keeping current flags")
				continue
			}
			log.Info().Msg("feature flags reloaded")
		case <-quit:
			break wait
		}
	}

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

// reloadFlags re-reads the flag overrides and applies them over the defaults.
// A bad file leaves the current flags untouched.
func reloadFlags(ctx context.Context, service *featureflags.Service, cfg config.Config) error {
	overrides, err := featureflags.LoadOverrides(cfg.FeatureFlags, cfg.FeatureFlagsFile)
	if err != nil {
		return err
	}
	return service.ApplyOverrides(ctx, overrides)
}
