package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteaudit/siteaudit/internal/domain"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]string{"grade": "A"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, http.StatusBadRequest, "BAD_REQUEST", "nope", map[string]any{"field": "url"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
	assert.Equal(t, "url", resp.Error.Details["field"])
}

func TestErrorFromDomain(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ErrorFromDomain(rec, domain.ErrMissingURL())

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, domain.ErrCodeMissingURL, resp.Error.Code)
	})

	t.Run("fetch error carries metadata", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ErrorFromDomain(rec, domain.ErrFetchNotFound("https://example.com/x"))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, domain.FetchErrNotFound, resp.Error.Details["fetch_error"])
	})

	t.Run("unknown error is masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ErrorFromDomain(rec, errors.New("pq: connection reset"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pq:")

		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, domain.ErrCodeInternal, resp.Error.Code)
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		URL string `json:"url"`
	}

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":"https://example.com"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "https://example.com", p.URL)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":"x","extra":1}`))
		var p payload
		err := DecodeJSON(r, &p)
		require.Error(t, err)
		assert.Equal(t, domain.ErrCodeValidation, domain.GetErrorCode(err))
	})

	t.Run("malformed body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})
}
