package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsActive  prometheus.Gauge

	// Audit pipeline metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	EvaluationsTotal *prometheus.CounterVec
	FetchErrorsTotal *prometheus.CounterVec

	// Claude API metrics
	ClaudeRequestsTotal   *prometheus.CounterVec
	ClaudeRequestDuration *prometheus.HistogramVec
	ClaudeTokensUsed      *prometheus.CounterVec
	ClaudeCostTotal       prometheus.Counter
	ClaudeCacheHits       prometheus.Counter
	ClaudeCacheMisses     prometheus.Counter

	// System metrics
	GoroutinesActive prometheus.Gauge
}

// NewMetrics creates a new metrics instance with all Prometheus metrics registered
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "siteaudit"
	}

	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_active",
				Help:      "Number of active HTTP requests",
			},
		),

		// Audit pipeline metrics
		AnalysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Total number of website analyses",
			},
			[]string{"outcome"}, // completed, fetch_failed, invalid_input
		),
		AnalysisDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analysis_duration_seconds",
				Help:      "End to end analysis duration in seconds",
				Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
			},
			[]string{"outcome"},
		),
		EvaluationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "category_evaluations_total",
				Help:      "Total number of category evaluations",
			},
			[]string{"mode"}, // ai, heuristic, heuristic_fallback
		),
		FetchErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_errors_total",
				Help:      "Total number of page fetch failures",
			},
			[]string{"kind"},
		),

		// Claude API metrics
		ClaudeRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "claude_requests_total",
				Help:      "Total number of Claude API requests",
			},
			[]string{"model", "purpose", "status"},
		),
		ClaudeRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "claude_request_duration_seconds",
				Help:      "Claude API request duration in seconds",
				Buckets:   []float64{1, 2, 5, 10, 20, 30, 60, 120},
			},
			[]string{"model", "purpose"},
		),
		ClaudeTokensUsed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "claude_tokens_used_total",
				Help:      "Total number of tokens used",
			},
			[]string{"model", "type"}, // type: input, output
		),
		ClaudeCostTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "claude_cost_usd_total",
				Help:      "Total estimated cost in USD",
			},
		),
		ClaudeCacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "claude_cache_hits_total",
				Help:      "Total number of cache hits",
			},
		),
		ClaudeCacheMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "claude_cache_misses_total",
				Help:      "Total number of cache misses",
			},
		),

		// System metrics
		GoroutinesActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "goroutines_active",
				Help:      "Number of active goroutines",
			},
		),
	}

	return m
}

// Handler returns the Prometheus HTTP handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordAnalysis records one analysis outcome
func (m *Metrics) RecordAnalysis(outcome string, duration time.Duration) {
	m.AnalysesTotal.WithLabelValues(outcome).Inc()
	m.AnalysisDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordEvaluation records one category evaluation by mode
func (m *Metrics) RecordEvaluation(mode string) {
	m.EvaluationsTotal.WithLabelValues(mode).Inc()
}

// RecordFetchError records a page fetch failure by subkind
func (m *Metrics) RecordFetchError(kind string) {
	m.FetchErrorsTotal.WithLabelValues(kind).Inc()
}

// RecordClaudeRequest records Claude API metrics
func (m *Metrics) RecordClaudeRequest(model, purpose, status string, duration time.Duration, inputTokens, outputTokens int, cost float64) {
	m.ClaudeRequestsTotal.WithLabelValues(model, purpose, status).Inc()
	m.ClaudeRequestDuration.WithLabelValues(model, purpose).Observe(duration.Seconds())
	m.ClaudeTokensUsed.WithLabelValues(model, "input").Add(float64(inputTokens))
	m.ClaudeTokensUsed.WithLabelValues(model, "output").Add(float64(outputTokens))
	m.ClaudeCostTotal.Add(cost)
}

// HTTPMiddleware returns middleware for recording HTTP metrics
func (m *Metrics) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.HTTPRequestsActive.Inc()
		defer m.HTTPRequestsActive.Dec()

		start := time.Now()

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		m.RecordHTTPRequest(r.Method, r.URL.Path, wrapped.statusCode, duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
