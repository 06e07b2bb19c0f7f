package llm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
)

// FailureCause buckets the reasons an AI completion can fail. Callers use
// it to tag fallback output with a human-readable note.
type FailureCause string

const (
	CauseRateLimit FailureCause = "rate_limit"
	CauseQuota     FailureCause = "quota"
	CauseBadKey    FailureCause = "bad_key"
	CauseTimeout   FailureCause = "timeout"
	CauseMalformed FailureCause = "malformed_response"
	CauseUnknown   FailureCause = "unknown"
)

// Note returns a short explanation suitable for user-facing evidence text.
func (c FailureCause) Note() string {
	switch c {
	case CauseRateLimit:
		return "AI analysis was rate limited"
	case CauseQuota:
		return "AI usage quota was exhausted"
	case CauseBadKey:
		return "AI API key was rejected"
	case CauseTimeout:
		return "AI analysis timed out"
	case CauseMalformed:
		return "AI returned an unreadable response"
	default:
		return "AI analysis was unavailable"
	}
}

// ClassifyFailure maps a completion error to its FailureCause.
func ClassifyFailure(err error) FailureCause {
	if err == nil {
		return CauseUnknown
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return CauseRateLimit
		case http.StatusUnauthorized, http.StatusForbidden:
			return CauseBadKey
		case http.StatusPaymentRequired:
			return CauseQuota
		}
		if strings.Contains(apiErr.Body, "credit") || strings.Contains(apiErr.Body, "quota") {
			return CauseQuota
		}
		return CauseUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CauseTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CauseTimeout
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "no JSON found"), strings.Contains(msg, "invalid JSON"), strings.Contains(msg, "empty response"):
		return CauseMalformed
	case strings.Contains(msg, "rate limit"):
		return CauseRateLimit
	}

	return CauseUnknown
}
