package middleware

import (
	"net/http"
	"strconv"

	"github.com/siteaudit/siteaudit/internal/repository/redis"
)

// RateLimitMiddleware provides per-client rate limiting backed by Redis.
// Limits are counted per remote IP within a one minute window.
type RateLimitMiddleware struct {
	cache   *redis.Cache
	limit   int
	enabled bool
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(cache *redis.Cache, limit int, enabled bool) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		cache:   cache,
		limit:   limit,
		enabled: enabled,
	}
}

// Handler returns the middleware handler
func (m *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip if rate limiting is disabled
		if !m.enabled || m.cache == nil {
			next.ServeHTTP(w, r)
			return
		}

		// Skip for health checks
		if r.URL.Path == "/health" || r.URL.Path == "/ready" {
			next.ServeHTTP(w, r)
			return
		}

		key := m.getRateLimitKey(r)

		allowed, count, err := m.cache.CheckRateLimit(r.Context(), key, m.limit)
		if err != nil {
			// On Redis error, allow the request
			next.ServeHTTP(w, r)
			return
		}

		remaining := m.limit - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(m.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getRateLimitKey determines the key for rate limiting
func (m *RateLimitMiddleware) getRateLimitKey(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.Header.Get("X-Real-IP")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}

	return "ip:" + ip
}
