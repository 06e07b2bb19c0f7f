package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/domain"
)

func newTestFetcher(t *testing.T, cfg FetcherConfig) *Fetcher {
	t.Helper()
	return NewFetcher(cfg, zap.NewNop())
}

func TestFetcher_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		assert.Contains(t, r.Header.Get("Accept"), "text/html")
		w.Write([]byte("<html><title>ok</title></html>"))
	}))
	defer server.Close()

	f := newTestFetcher(t, FetcherConfig{})
	result, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.Body, "<title>ok</title>")
}

func TestFetcher_StatusSubkinds(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		subkind string
	}{
		{"forbidden", http.StatusForbidden, domain.FetchErrForbidden},
		{"not found", http.StatusNotFound, domain.FetchErrNotFound},
		{"server error", http.StatusInternalServerError, domain.FetchErrHTTPStatus},
		{"redirect loop exhausted", http.StatusBadGateway, domain.FetchErrHTTPStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			f := newTestFetcher(t, FetcherConfig{})
			_, err := f.Fetch(context.Background(), server.URL)
			require.Error(t, err)

			sub, ok := domain.FetchSubkind(err)
			require.True(t, ok, "expected a fetch error, got %v", err)
			assert.Equal(t, tt.subkind, sub)
		})
	}
}

func TestFetcher_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte("late"))
	}))
	defer server.Close()

	f := newTestFetcher(t, FetcherConfig{Timeout: 50 * time.Millisecond})
	_, err := f.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	sub, ok := domain.FetchSubkind(err)
	require.True(t, ok)
	assert.Equal(t, domain.FetchErrTimeout, sub)
}

func TestFetcher_ConnectionRefused(t *testing.T) {
	// Grab a port that nothing listens on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	refusedURL := server.URL
	server.Close()

	f := newTestFetcher(t, FetcherConfig{})
	_, err := f.Fetch(context.Background(), refusedURL)
	require.Error(t, err)

	sub, ok := domain.FetchSubkind(err)
	require.True(t, ok)
	assert.Equal(t, domain.FetchErrConnectionRefused, sub)
}

func TestFetcher_HostNotFound(t *testing.T) {
	f := newTestFetcher(t, FetcherConfig{})
	_, err := f.Fetch(context.Background(), "http://definitely-not-a-real-host.invalid")
	require.Error(t, err)

	sub, ok := domain.FetchSubkind(err)
	require.True(t, ok)
	assert.Equal(t, domain.FetchErrHostNotFound, sub)
}

func TestFetcher_BodySizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 1000; i++ {
			w.Write([]byte("0123456789"))
		}
	}))
	defer server.Close()

	f := newTestFetcher(t, FetcherConfig{MaxBodySize: 100})
	result, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Len(t, result.Body, 100)
}

func TestExtractor_Extract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixtureHTML))
	}))
	defer server.Close()

	extractor := NewExtractor(newTestFetcher(t, FetcherConfig{}), zap.NewNop())
	summary, err := extractor.Extract(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Acme Widgets | Home", summary.Title)
	assert.Equal(t, http.StatusOK, summary.StatusCode)
	assert.Equal(t, 2, summary.Forms)
}

func TestExtractor_ExtractPropagatesFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	extractor := NewExtractor(newTestFetcher(t, FetcherConfig{}), zap.NewNop())
	_, err := extractor.Extract(context.Background(), server.URL)
	require.Error(t, err)

	sub, _ := domain.FetchSubkind(err)
	assert.Equal(t, domain.FetchErrForbidden, sub)
}
