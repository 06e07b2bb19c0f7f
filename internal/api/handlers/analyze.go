package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/domain"
	"github.com/siteaudit/siteaudit/pkg/httputil"
)

// Analyzer runs a full audit for one URL.
type Analyzer interface {
	Analyze(ctx context.Context, url string) (*domain.AnalysisResult, error)
}

// ResultCache stores completed analyses keyed by URL. A nil cache disables
// result caching.
type ResultCache interface {
	GetAnalysis(ctx context.Context, url string) (*domain.AnalysisResult, error)
	SetAnalysis(ctx context.Context, result *domain.AnalysisResult) error
}

// FetchErrorRecorder counts fetch failures by subkind.
type FetchErrorRecorder interface {
	RecordFetchError(kind string)
}

// AnalyzeHandler handles analysis requests
type AnalyzeHandler struct {
	service Analyzer
	cache   ResultCache
	metrics FetchErrorRecorder
	logger  *zap.Logger
}

// NewAnalyzeHandler creates a new analyze handler. cache and metrics may
// be nil.
func NewAnalyzeHandler(service Analyzer, cache ResultCache, metrics FetchErrorRecorder, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// AnalyzeRequest is the request body for POST /api/v1/analyze
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// AnalyzeResponse wraps the analysis result with delivery metadata
type AnalyzeResponse struct {
	Result *domain.AnalysisResult `json:"result"`
	Cached bool                   `json:"cached"`
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.ErrorFromDomain(w, err)
		return
	}

	cleanURL, err := domain.ValidateAuditURL(req.URL)
	if err != nil {
		httputil.ErrorFromDomain(w, err)
		return
	}

	if h.cache != nil {
		cached, err := h.cache.GetAnalysis(r.Context(), cleanURL)
		if err != nil {
			h.logger.Warn("result cache lookup failed", zap.Error(err))
		} else if cached != nil {
			httputil.JSON(w, http.StatusOK, AnalyzeResponse{Result: cached, Cached: true})
			return
		}
	}

	result, err := h.service.Analyze(r.Context(), cleanURL)
	if err != nil {
		if kind, ok := domain.FetchSubkind(err); ok && h.metrics != nil {
			h.metrics.RecordFetchError(kind)
		}
		h.logger.Warn("analysis failed",
			zap.String("url", cleanURL),
			zap.String("code", domain.GetErrorCode(err)),
			zap.Error(err))
		if _, ok := domain.AsAppError(err); !ok {
			err = domain.ErrAnalysisFailed(err)
		}
		httputil.ErrorFromDomain(w, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.SetAnalysis(r.Context(), result); err != nil {
			h.logger.Warn("result cache store failed", zap.Error(err))
		}
	}

	httputil.JSON(w, http.StatusOK, AnalyzeResponse{Result: result})
}
