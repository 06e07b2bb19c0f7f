package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/api/handlers"
	"github.com/siteaudit/siteaudit/internal/api/middleware"
	"github.com/siteaudit/siteaudit/internal/config"
	"github.com/siteaudit/siteaudit/internal/observability"
	rediscache "github.com/siteaudit/siteaudit/internal/repository/redis"
	"github.com/siteaudit/siteaudit/pkg/httputil"
)

// Router holds the HTTP router and its dependencies
type Router struct {
	chi.Router
	logger *zap.Logger
}

// RouterConfig contains configuration for the router
type RouterConfig struct {
	Service    handlers.Analyzer
	Cache      *rediscache.Cache
	Metrics    *observability.Metrics
	Config     *config.Config
	Logger     *zap.Logger
	EnableCORS bool
	RateLimit  int
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(cfg RouterConfig) *Router {
	r := chi.NewRouter()

	// Base middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewRecoveryMiddleware(cfg.Logger).Handler)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Handler)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.HTTPMiddleware)
	}
	r.Use(chimw.Timeout(120 * time.Second))

	// CORS configuration
	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Rate limiting (if Redis is available)
	if cfg.Cache != nil && cfg.RateLimit > 0 {
		r.Use(middleware.NewRateLimitMiddleware(cfg.Cache, cfg.RateLimit, true).Handler)
	}

	// Health check endpoints
	r.Get("/health", healthHandler)
	r.Get("/ready", readyHandler(cfg.Cache))
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		var cache handlers.ResultCache
		if cfg.Cache != nil {
			cache = cfg.Cache
		}
		var recorder handlers.FetchErrorRecorder
		if cfg.Metrics != nil {
			recorder = cfg.Metrics
		}

		analyzeHandler := handlers.NewAnalyzeHandler(cfg.Service, cache, recorder, cfg.Logger)
		probeHandler := handlers.NewProbeHandler(cfg.Config, cfg.Logger)

		r.Post("/analyze", analyzeHandler.Analyze)
		r.Post("/ping", probeHandler.Ping)
	})

	return &Router{
		Router: r,
		logger: cfg.Logger,
	}
}

// healthHandler returns basic health status
func healthHandler(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "siteaudit-api",
	})
}

// readyHandler checks if all dependencies are ready
func readyHandler(cache *rediscache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]string)
		allHealthy := true

		if cache != nil {
			if err := cache.Health(r.Context()); err != nil {
				checks["redis"] = "unhealthy: " + err.Error()
				allHealthy = false
			} else {
				checks["redis"] = "healthy"
			}
		} else {
			checks["redis"] = "not configured"
		}

		status := http.StatusOK
		statusText := "ready"
		if !allHealthy {
			status = http.StatusServiceUnavailable
			statusText = "not ready"
		}

		httputil.JSON(w, status, map[string]any{
			"status": statusText,
			"checks": checks,
		})
	}
}
