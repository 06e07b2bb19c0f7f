package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureCause
	}{
		{
			name: "rate limited API response",
			err:  &APIError{StatusCode: http.StatusTooManyRequests, Body: "rate_limit_error"},
			want: CauseRateLimit,
		},
		{
			name: "unauthorized",
			err:  &APIError{StatusCode: http.StatusUnauthorized, Body: "authentication_error"},
			want: CauseBadKey,
		},
		{
			name: "forbidden",
			err:  &APIError{StatusCode: http.StatusForbidden, Body: "permission_error"},
			want: CauseBadKey,
		},
		{
			name: "payment required",
			err:  &APIError{StatusCode: http.StatusPaymentRequired, Body: "billing"},
			want: CauseQuota,
		},
		{
			name: "credit exhausted in body",
			err:  &APIError{StatusCode: http.StatusBadRequest, Body: "your credit balance is too low"},
			want: CauseQuota,
		},
		{
			name: "wrapped API error",
			err:  fmt.Errorf("failed after 3 attempts: %w", &APIError{StatusCode: http.StatusTooManyRequests}),
			want: CauseRateLimit,
		},
		{
			name: "context deadline",
			err:  context.DeadlineExceeded,
			want: CauseTimeout,
		},
		{
			name: "no JSON found",
			err:  errors.New("failed after 3 attempts: no JSON found in response"),
			want: CauseMalformed,
		},
		{
			name: "invalid JSON",
			err:  errors.New("invalid JSON: unexpected end of input"),
			want: CauseMalformed,
		},
		{
			name: "local rate limiter",
			err:  errors.New("rate limit: context canceled"),
			want: CauseRateLimit,
		},
		{
			name: "unrecognized",
			err:  errors.New("something else entirely"),
			want: CauseUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyFailure(tt.err); got != tt.want {
				t.Errorf("ClassifyFailure() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFailureCauseNote(t *testing.T) {
	causes := []FailureCause{CauseRateLimit, CauseQuota, CauseBadKey, CauseTimeout, CauseMalformed, CauseUnknown}
	for _, c := range causes {
		if c.Note() == "" {
			t.Errorf("Note() for %v should not be empty", c)
		}
	}
}
