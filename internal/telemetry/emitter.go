// Package telemetry posts product usage events to an external collector.
// Emission is fire and forget: a failed or slow delivery never affects
// the request that triggered it.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/config"
)

// Event is the wire shape sent to the collector.
type Event struct {
	Name       string         `json:"event"`
	Timestamp  string         `json:"timestamp"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Emitter delivers events over HTTP.
type Emitter struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewEmitter creates an emitter from config. Returns nil when no endpoint
// is configured; callers treat a nil emitter as disabled.
func NewEmitter(cfg config.TelemetryConfig, logger *zap.Logger) *Emitter {
	if !cfg.Enabled() {
		return nil
	}
	return &Emitter{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Emit sends one event asynchronously. Delivery failures are logged at
// debug level and swallowed.
func (e *Emitter) Emit(ctx context.Context, event string, props map[string]any) {
	if e == nil {
		return
	}

	payload, err := json.Marshal(Event{
		Name:       event,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Properties: props,
	})
	if err != nil {
		e.logger.Debug("telemetry event not serializable",
			zap.String("event", event),
			zap.Error(err))
		return
	}

	// Detach from the request context so an aborted request does not
	// cancel delivery; the client timeout still bounds it.
	go e.send(context.WithoutCancel(ctx), event, payload)
}

func (e *Emitter) send(ctx context.Context, event string, payload []byte) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(payload))
	if err != nil {
		e.logger.Debug("telemetry request build failed",
			zap.String("event", event),
			zap.Error(err))
		return
	}

	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.logger.Debug("telemetry delivery failed",
			zap.String("event", event),
			zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		e.logger.Debug("telemetry collector rejected event",
			zap.String("event", event),
			zap.Int("status", resp.StatusCode))
	}
}
