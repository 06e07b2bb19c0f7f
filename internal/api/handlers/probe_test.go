package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/config"
)

func TestProbeHandler_Ping(t *testing.T) {
	cfg := &config.Config{}
	cfg.Claude.APIKey = "sk-ant-test"
	cfg.Telemetry.Endpoint = "https://collector.example.com/v1/events"

	h := NewProbeHandler(cfg, zap.NewNop())

	body := strings.NewReader(`{"echo":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ping", body)
	rec := httptest.NewRecorder()

	h.Ping(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data PingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hello", resp.Data.Echo)
	assert.True(t, resp.Data.AIEnabled)
	assert.True(t, resp.Data.ClaudeKeyPresent)
	assert.True(t, resp.Data.TelemetryEnabled)
	assert.False(t, resp.Data.TelemetryKeyPresent)
	assert.NotContains(t, rec.Body.String(), "sk-ant-test", "secrets must never echo back")
}

func TestProbeHandler_PingEmptyBody(t *testing.T) {
	h := NewProbeHandler(&config.Config{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ping", nil)
	rec := httptest.NewRecorder()

	h.Ping(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data PingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Echo)
	assert.False(t, resp.Data.AIEnabled)
	assert.False(t, resp.Data.ClaudeKeyPresent)
}
