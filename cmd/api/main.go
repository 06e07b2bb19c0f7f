package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/siteaudit/siteaudit/internal/api"
	"github.com/siteaudit/siteaudit/internal/config"
	"github.com/siteaudit/siteaudit/internal/llm"
	"github.com/siteaudit/siteaudit/internal/observability"
	rediscache "github.com/siteaudit/siteaudit/internal/repository/redis"
	"github.com/siteaudit/siteaudit/internal/services/audit"
	"github.com/siteaudit/siteaudit/internal/services/extract"
	"github.com/siteaudit/siteaudit/internal/telemetry"
)

func main() {
	// Load .env if present; real environment wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.App.Environment, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("Starting siteaudit API",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
		zap.Bool("ai_enabled", cfg.Claude.Enabled()),
	)

	// Connect to Redis (optional)
	var cache *rediscache.Cache
	if cfg.Redis.Enabled() {
		cache, err = rediscache.New(cfg.Redis)
		if err != nil {
			logger.Warn("Failed to connect to Redis, caching and rate limiting disabled", zap.Error(err))
			cache = nil
		} else {
			defer cache.Close()
			logger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	// Prometheus metrics
	metrics := observability.NewMetrics(cfg.App.Name)

	// Page extraction pipeline
	fetcher := extract.NewFetcher(extract.FetcherConfig{
		Timeout:     cfg.Fetcher.Timeout,
		UserAgent:   cfg.Fetcher.UserAgent,
		MaxBodySize: cfg.Fetcher.MaxBodySize,
	}, logger)
	extractor := extract.NewExtractor(fetcher, logger)

	// AI evaluator (optional)
	var aiEvaluator audit.Evaluator
	if cfg.Claude.Enabled() {
		claudeClient, err := llm.NewClaudeClient(llm.Config{
			APIKey:       cfg.Claude.APIKey,
			Model:        cfg.Claude.Model,
			MaxTokens:    cfg.Claude.MaxTokens,
			Timeout:      cfg.Claude.Timeout,
			RateLimitRPM: cfg.Claude.RateLimitRPM,
			CacheTTL:     cfg.Claude.CacheTTL,
			MaxRetries:   cfg.Claude.MaxRetries,
		})
		if err != nil {
			logger.Warn("Claude client unavailable, falling back to heuristics", zap.Error(err))
		} else {
			aiEvaluator = audit.NewAIEvaluator(claudeClient, logger)
			logger.Info("AI evaluation enabled", zap.String("model", cfg.Claude.Model))
		}
	} else {
		logger.Info("No Claude API key configured, using heuristic evaluation")
	}

	// Telemetry (optional)
	emitter := telemetry.NewEmitter(cfg.Telemetry, logger)
	var eventEmitter audit.EventEmitter
	if emitter != nil {
		eventEmitter = emitter
		logger.Info("Telemetry enabled", zap.String("endpoint", cfg.Telemetry.Endpoint))
	}

	service := audit.NewService(extractor, aiEvaluator, eventEmitter, metrics, logger)

	rateLimit := 0
	if cfg.RateLimits.Enabled {
		rateLimit = cfg.RateLimits.RequestsPerMin
	}

	// Create router
	router := api.NewRouter(api.RouterConfig{
		Service:    service,
		Cache:      cache,
		Metrics:    metrics,
		Config:     cfg,
		Logger:     logger,
		EnableCORS: cfg.Security.CORSEnabled,
		RateLimit:  rateLimit,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening", zap.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Fatal("Server error", zap.Error(err))

	case sig := <-shutdown:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown failed, forcing close", zap.Error(err))
			server.Close()
		}

		logger.Info("Server stopped gracefully")
	}
}

// initLogger creates a configured zap logger
func initLogger(env, level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := config.Build()
	if err != nil {
		// Fall back to basic logger
		logger, _ = zap.NewProduction()
	}

	return logger
}
