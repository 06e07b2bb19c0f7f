package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/domain"
)

// Fetcher downloads a page over plain HTTP. No retries and no caching:
// the audit reflects what the site served right now.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
	logger      *zap.Logger
}

// FetcherConfig holds fetcher settings
type FetcherConfig struct {
	Timeout     time.Duration
	UserAgent   string
	MaxBodySize int64
}

// DefaultFetcherConfig returns default fetcher settings
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		Timeout:     12 * time.Second,
		UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		MaxBodySize: 5 << 20,
	}
}

// NewFetcher creates a page fetcher
func NewFetcher(cfg FetcherConfig, logger *zap.Logger) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultFetcherConfig().Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultFetcherConfig().UserAgent
	}
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = DefaultFetcherConfig().MaxBodySize
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent:   cfg.UserAgent,
		maxBodySize: cfg.MaxBodySize,
		logger:      logger,
	}
}

// FetchResult is the raw outcome of a page fetch
type FetchResult struct {
	Body       string
	StatusCode int
	FinalURL   string
}

// Fetch downloads the page at rawURL. Failures come back as FETCH_FAILED
// AppErrors tagged with a subkind the caller can relay to the user.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, domain.ErrInvalidURL(rawURL).WithCause(err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("page fetch failed",
			zap.String("url", rawURL),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, f.classifyTransportError(rawURL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrFetchForbidden(rawURL)
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrFetchNotFound(rawURL)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, domain.ErrFetchStatus(rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, domain.ErrFetchStatus(rawURL, resp.StatusCode).
			WithCause(fmt.Errorf("reading body: %w", err))
	}

	f.logger.Debug("page fetched",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	return &FetchResult{
		Body:       string(body),
		StatusCode: resp.StatusCode,
		FinalURL:   resp.Request.URL.String(),
	}, nil
}

// classifyTransportError maps low-level network failures to fetch subkinds.
func (f *Fetcher) classifyTransportError(rawURL string, err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return domain.ErrFetchHostNotFound(rawURL).WithCause(err)
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return domain.ErrFetchConnectionRefused(rawURL).WithCause(err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return domain.ErrFetchTimeout(rawURL).WithCause(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.ErrFetchTimeout(rawURL).WithCause(err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return domain.ErrFetchConnectionRefused(rawURL).WithCause(err)
	}

	return domain.ErrFetchNetwork(rawURL).WithCause(err)
}
