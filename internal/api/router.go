// Package api provides the HTTP API for Legwise.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/legwise/legwise/internal/api/handler"
	"github.com/legwise/legwise/internal/api/middleware"
	"github.com/legwise/legwise/internal/api/response"
	"github.com/legwise/legwise/internal/featureflags"
	"github.com/legwise/legwise/internal/journey"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version            string
	BuildTime          string
	Logger             zerolog.Logger
	ServiceName        string
	Metrics            *middleware.Metrics
	Planner            *journey.Planner
	FeatureFlagService *featureflags.Service
	CORSAllowedOrigins []string
	RequireTLS         bool
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "legwise-api"
	}

	planner := cfg.Planner
	if planner == nil {
		planner = journey.NewPlanner(journey.PlannerConfig{Logger: cfg.Logger})
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))           // Structured logging
	r.Use(middleware.Recovery(cfg.Logger))         // Panic recovery
	r.Use(chimiddleware.RealIP)                    // Real IP extraction
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins)) // Browser client
	r.Use(middleware.SecurityHeaders)              // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS(cfg.RequireTLS))   // TLS enforcement
	r.Use(middleware.ContentTypeJSON)              // JSON content type

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, req, "no route for "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w, req, req.Method+" is not supported on "+req.URL.Path)
	})

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, planner.Catalog(), cfg.FeatureFlagService)
	journeyHandler := handler.NewJourneyHandler(planner, cfg.FeatureFlagService, cfg.Logger)
	metadataHandler := handler.NewMetadataHandler()
	featureFlagsHandler := handler.NewFeatureFlagsHandler(cfg.FeatureFlagService)

	// Create rate limit middleware for different endpoint categories
	searchRateLimit := middleware.RateLimitByIP(middleware.SearchRateLimit)     // 60 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 100 req/min

	// Web client routes
	r.Route("/api", func(r chi.Router) {
		r.With(standardRateLimit).Get("/init", journeyHandler.Init)
		r.With(searchRateLimit, middleware.RequireJSON).Post("/search", journeyHandler.Search)
	})

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		r.With(standardRateLimit).Get("/catalog", journeyHandler.Init)
		r.With(searchRateLimit, middleware.RequireJSON).Post("/journeys:search", journeyHandler.Search)

		// Metadata endpoints (public) - standard rate limiting
		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/enums", metadataHandler.GetEnums)
			r.Get("/feature-flags", featureFlagsHandler.ListFeatureFlags)
		})
	})

	return r
}
