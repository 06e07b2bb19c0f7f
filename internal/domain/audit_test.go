package domain

import (
	"encoding/json"
	"testing"
)

func TestAnswerPoints(t *testing.T) {
	tests := []struct {
		answer Answer
		want   float64
	}{
		{AnswerYes, 1.0},
		{AnswerNeedsWork, 0.5},
		{AnswerNo, 0.0},
		{Answer("bogus"), 0.0},
	}
	for _, tt := range tests {
		if got := tt.answer.Points(); got != tt.want {
			t.Errorf("Points(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestAnswerIsValid(t *testing.T) {
	for _, a := range []Answer{AnswerYes, AnswerNo, AnswerNeedsWork} {
		if !a.IsValid() {
			t.Errorf("expected %q to be valid", a)
		}
	}
	if Answer("maybe").IsValid() {
		t.Error("expected 'maybe' to be invalid")
	}
}

func TestPriorityIsValid(t *testing.T) {
	for _, p := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		if !p.IsValid() {
			t.Errorf("expected %q to be valid", p)
		}
	}
	if Priority("critical").IsValid() {
		t.Error("expected 'critical' to be invalid")
	}
}

func TestValidateAuditURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
		wantURL  string
	}{
		{"valid https", "https://example.com", "", "https://example.com"},
		{"valid http with path", "http://example.com/pricing", "", "http://example.com/pricing"},
		{"trims whitespace", "  https://example.com  ", "", "https://example.com"},
		{"empty", "", ErrCodeMissingURL, ""},
		{"whitespace only", "   ", ErrCodeMissingURL, ""},
		{"no scheme", "example.com", ErrCodeInvalidURL, ""},
		{"relative path", "/pricing", ErrCodeInvalidURL, ""},
		{"bad scheme", "ftp://example.com", ErrCodeInvalidURL, ""},
		{"scheme only", "https://", ErrCodeInvalidURL, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAuditURL(tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.wantURL {
					t.Errorf("got %q, want %q", got, tt.wantURL)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if GetErrorCode(err) != tt.wantCode {
				t.Errorf("got code %q, want %q", GetErrorCode(err), tt.wantCode)
			}
		})
	}
}

func TestAltCoverage(t *testing.T) {
	c := &ContentSummary{Images: []string{"logo", "hero"}, TotalImages: 4}
	cov, ok := c.AltCoverage()
	if !ok || cov != 0.5 {
		t.Errorf("got (%v, %v), want (0.5, true)", cov, ok)
	}

	empty := &ContentSummary{}
	if _, ok := empty.AltCoverage(); ok {
		t.Error("expected no coverage for page without images")
	}
}

func TestAnalysisResultRoundTrip(t *testing.T) {
	result := &AnalysisResult{
		URL:      "https://example.com",
		CROScore: 12,
		UXScore:  15,
		Grade:    "B",
		CROResults: []CategoryResult{{
			Category: "Offers & Messaging",
			Kind:     AuditKindCRO,
			Questions: []AnsweredQuestion{
				{Question: "q1", Answer: AnswerNeedsWork, Priority: PriorityMedium},
				{Question: "q2", Answer: AnswerNo, Priority: PriorityHigh},
			},
			Score: 25,
		}},
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded AnalysisResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	qs := decoded.CROResults[0].Questions
	if qs[0].Answer != AnswerNeedsWork {
		t.Errorf("needs_work answer not preserved, got %q", qs[0].Answer)
	}
	if qs[1].Answer != AnswerNo {
		t.Errorf("no answer not preserved, got %q", qs[1].Answer)
	}
	if decoded.Grade != "B" || decoded.CROScore != 12 {
		t.Errorf("scores not preserved: %+v", decoded)
	}
}
