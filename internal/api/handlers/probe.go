package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/config"
	"github.com/siteaudit/siteaudit/pkg/httputil"
)

// ProbeHandler answers diagnostic pings so operators can verify the
// service sees its configuration without exposing any secret values.
type ProbeHandler struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewProbeHandler creates a new probe handler
func NewProbeHandler(cfg *config.Config, logger *zap.Logger) *ProbeHandler {
	return &ProbeHandler{cfg: cfg, logger: logger}
}

// PingRequest is the request body for POST /api/v1/ping
type PingRequest struct {
	Echo string `json:"echo,omitempty"`
}

// PingResponse reports configuration presence flags
type PingResponse struct {
	Echo                string `json:"echo,omitempty"`
	Timestamp           string `json:"timestamp"`
	AIEnabled           bool   `json:"ai_enabled"`
	TelemetryEnabled    bool   `json:"telemetry_enabled"`
	ClaudeKeyPresent    bool   `json:"claude_key_present"`
	TelemetryKeyPresent bool   `json:"telemetry_key_present"`
}

// Ping handles POST /api/v1/ping
func (h *ProbeHandler) Ping(w http.ResponseWriter, r *http.Request) {
	var req PingRequest
	if r.ContentLength > 0 {
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.ErrorFromDomain(w, err)
			return
		}
	}

	httputil.JSON(w, http.StatusOK, PingResponse{
		Echo:                req.Echo,
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
		AIEnabled:           h.cfg.Claude.Enabled(),
		TelemetryEnabled:    h.cfg.Telemetry.Enabled(),
		ClaudeKeyPresent:    h.cfg.Claude.APIKey != "",
		TelemetryKeyPresent: h.cfg.Telemetry.APIKey != "",
	})
}
