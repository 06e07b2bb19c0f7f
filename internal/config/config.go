package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents the deployment environment
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration
type Config struct {
	// Environment
	Env      Environment `envconfig:"ENV" default:"development"`
	LogLevel string      `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool        `envconfig:"DEBUG" default:"false"`

	// Application
	App AppConfig

	// Server
	Server ServerConfig

	// Page fetching
	Fetcher FetcherConfig

	// Claude AI
	Claude ClaudeConfig

	// Telemetry
	Telemetry TelemetryConfig

	// Redis
	Redis RedisConfig

	// Rate Limits
	RateLimits RateLimitConfig

	// Security
	Security SecurityConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"siteaudit"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
	Environment string `envconfig:"APP_ENV" default:"development"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	MaxRequestSize  int64         `envconfig:"SERVER_MAX_REQUEST_SIZE" default:"1048576"` // 1MB
}

// FetcherConfig holds page fetching settings. The timeout defaults inside
// the 10-15s band sites are given to respond.
type FetcherConfig struct {
	Timeout     time.Duration `envconfig:"FETCH_TIMEOUT" default:"12s"`
	UserAgent   string        `envconfig:"FETCH_USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
	MaxBodySize int64         `envconfig:"FETCH_MAX_BODY_SIZE" default:"5242880"` // 5MB
}

// ClaudeConfig holds Claude AI settings. The API key is optional: without
// one the evaluator runs on heuristics alone.
type ClaudeConfig struct {
	APIKey        string        `envconfig:"ANTHROPIC_API_KEY" default:""`
	Model         string        `envconfig:"CLAUDE_MODEL" default:"claude-sonnet-4-20250514"`
	MaxTokens     int           `envconfig:"CLAUDE_MAX_TOKENS" default:"4096"`
	Timeout       time.Duration `envconfig:"CLAUDE_TIMEOUT" default:"60s"`
	RateLimitRPM  int           `envconfig:"CLAUDE_RATE_LIMIT_RPM" default:"50"`
	CacheTTL      time.Duration `envconfig:"CLAUDE_CACHE_TTL" default:"1h"`
	MaxRetries    int           `envconfig:"CLAUDE_MAX_RETRIES" default:"3"`
	EnableCaching bool          `envconfig:"CLAUDE_ENABLE_CACHING" default:"true"`
}

// Enabled reports whether the AI evaluation path is configured.
func (c ClaudeConfig) Enabled() bool {
	return c.APIKey != ""
}

// TelemetryConfig holds usage analytics settings
type TelemetryConfig struct {
	Endpoint string        `envconfig:"TELEMETRY_ENDPOINT" default:""`
	APIKey   string        `envconfig:"TELEMETRY_API_KEY" default:""`
	Timeout  time.Duration `envconfig:"TELEMETRY_TIMEOUT" default:"5s"`
}

// Enabled reports whether telemetry events should be sent. The API key
// is optional; unauthenticated collectors are allowed.
func (c TelemetryConfig) Enabled() bool {
	return c.Endpoint != ""
}

// RedisConfig holds Redis settings
type RedisConfig struct {
	Host         string        `envconfig:"REDIS_HOST" default:""`
	Port         int           `envconfig:"REDIS_PORT" default:"6379"`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"5"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

// Addr returns Redis address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Enabled reports whether a Redis host is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// RateLimitConfig holds rate limiting settings
type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"60"`
}

// SecurityConfig holds security settings
type SecurityConfig struct {
	// CORS
	CORSEnabled        bool     `envconfig:"CORS_ENABLED" default:"true"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// TLS
	TLSEnabled  bool   `envconfig:"TLS_ENABLED" default:"false"`
	TLSCertFile string `envconfig:"TLS_CERT_FILE" default:""`
	TLSKeyFile  string `envconfig:"TLS_KEY_FILE" default:""`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errors []string

	if c.Fetcher.Timeout < 1*time.Second {
		errors = append(errors, "FETCH_TIMEOUT must be at least 1s")
	}
	if c.Fetcher.UserAgent == "" {
		errors = append(errors, "FETCH_USER_AGENT must not be empty")
	}
	if c.Claude.Enabled() && c.Claude.MaxTokens <= 0 {
		errors = append(errors, "CLAUDE_MAX_TOKENS must be positive")
	}
	if c.RateLimits.Enabled && c.RateLimits.RequestsPerMin <= 0 {
		errors = append(errors, "RATE_LIMIT_REQUESTS_PER_MIN must be positive when rate limiting is enabled")
	}

	if c.Env == EnvProduction {
		if c.Security.TLSEnabled && (c.Security.TLSCertFile == "" || c.Security.TLSKeyFile == "") {
			errors = append(errors, "TLS_CERT_FILE and TLS_KEY_FILE are required when TLS is enabled")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// GetLogLevel returns the appropriate zap log level
func (c *Config) GetLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}
