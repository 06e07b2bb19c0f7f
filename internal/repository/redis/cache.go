package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/siteaudit/siteaudit/internal/config"
	"github.com/siteaudit/siteaudit/internal/domain"
)

// Cache provides Redis caching and rate limiting
type Cache struct {
	client *redis.Client
}

// Key prefixes for different cache types
const (
	PrefixAnalysis  = "analysis:"
	PrefixRateLimit = "ratelimit:"
)

// Default TTLs
const (
	AnalysisTTL     = 15 * time.Minute
	RateLimitWindow = 1 * time.Minute
)

// New creates a new Redis cache client
func New(cfg config.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	return c.client.Close()
}

// Health checks Redis connectivity
func (c *Cache) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Analysis result caching. Keyed by normalized URL so repeat requests for
// the same page within the TTL skip the fetch and evaluation entirely.

// GetAnalysis retrieves a cached analysis result. A cache miss returns
// (nil, nil).
func (c *Cache) GetAnalysis(ctx context.Context, url string) (*domain.AnalysisResult, error) {
	key := PrefixAnalysis + url
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// SetAnalysis caches an analysis result
func (c *Cache) SetAnalysis(ctx context.Context, result *domain.AnalysisResult) error {
	key := PrefixAnalysis + result.URL
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, AnalysisTTL).Err()
}

// InvalidateAnalysis removes a cached result
func (c *Cache) InvalidateAnalysis(ctx context.Context, url string) error {
	key := PrefixAnalysis + url
	return c.client.Del(ctx, key).Err()
}

// Rate limiting

// CheckRateLimit checks and increments rate limit counter
func (c *Cache) CheckRateLimit(ctx context.Context, key string, limit int) (bool, int, error) {
	fullKey := PrefixRateLimit + key

	pipe := c.client.Pipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.Expire(ctx, fullKey, RateLimitWindow)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, 0, err
	}

	count := int(incr.Val())
	return count <= limit, count, nil
}

// GetRateLimitRemaining returns remaining rate limit
func (c *Cache) GetRateLimitRemaining(ctx context.Context, key string, limit int) (int, error) {
	fullKey := PrefixRateLimit + key
	count, err := c.client.Get(ctx, fullKey).Int()
	if err != nil {
		if err == redis.Nil {
			return limit, nil
		}
		return 0, err
	}

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return remaining, nil
}
