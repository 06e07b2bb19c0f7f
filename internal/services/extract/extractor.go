package extract

import (
	"context"

	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/domain"
)

// Extractor turns a URL into a ContentSummary.
type Extractor struct {
	fetcher *Fetcher
	logger  *zap.Logger
}

// NewExtractor creates a content extractor
func NewExtractor(fetcher *Fetcher, logger *zap.Logger) *Extractor {
	return &Extractor{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Extract fetches the page and parses it into a ContentSummary.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*domain.ContentSummary, error) {
	result, err := e.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	summary, err := ParseContent(result.Body, result.StatusCode)
	if err != nil {
		return nil, domain.ErrAnalysisFailed(err)
	}

	e.logger.Info("content extracted",
		zap.String("url", rawURL),
		zap.String("title", summary.Title),
		zap.Int("headings", len(summary.Headings)),
		zap.Int("links", len(summary.Links)),
		zap.Int("images", summary.TotalImages),
		zap.Int("forms", summary.Forms),
		zap.Int("buttons", summary.Buttons))

	return summary, nil
}
