package domain

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Answer is the verdict for a single audit question.
type Answer string

const (
	AnswerYes       Answer = "yes"
	AnswerNo        Answer = "no"
	AnswerNeedsWork Answer = "needs_work"
)

func (a Answer) IsValid() bool {
	switch a {
	case AnswerYes, AnswerNo, AnswerNeedsWork:
		return true
	}
	return false
}

// Points returns the score contribution of the answer.
func (a Answer) Points() float64 {
	switch a {
	case AnswerYes:
		return 1.0
	case AnswerNeedsWork:
		return 0.5
	default:
		return 0.0
	}
}

// Priority indicates how urgently a finding should be addressed.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// AuditKind distinguishes the two question banks.
type AuditKind string

const (
	AuditKindCRO AuditKind = "cro"
	AuditKindUX  AuditKind = "ux"
)

// ContentSummary is the structured extraction of a fetched page.
// Images holds the non-empty alt texts; TotalImages counts every img tag
// so alt coverage can be computed.
type ContentSummary struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Headings    []string `json:"headings"`
	Links       []string `json:"links"`
	Images      []string `json:"images"`
	TotalImages int      `json:"total_images"`
	Forms       int      `json:"forms"`
	Buttons     int      `json:"buttons"`
	RawHTML     string   `json:"-"`
	StatusCode  int      `json:"status_code"`
}

// AltCoverage returns the fraction of images that carry alt text,
// and true when the page has at least one image.
func (c *ContentSummary) AltCoverage() (float64, bool) {
	if c.TotalImages == 0 {
		return 0, false
	}
	return float64(len(c.Images)) / float64(c.TotalImages), true
}

// Question is one item of a question bank.
type Question struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Category groups questions under a named concern.
type Category struct {
	Name      string     `json:"name"`
	Kind      AuditKind  `json:"kind"`
	Questions []Question `json:"questions"`
}

// AnsweredQuestion is the evaluation of a single question.
type AnsweredQuestion struct {
	Question       string   `json:"question"`
	Answer         Answer   `json:"answer"`
	Evidence       string   `json:"evidence"`
	Recommendation string   `json:"recommendation"`
	Priority       Priority `json:"priority"`
}

// CategoryResult holds the answers and score for one category.
type CategoryResult struct {
	Category  string             `json:"category"`
	Kind      AuditKind          `json:"kind"`
	Questions []AnsweredQuestion `json:"questions"`
	Score     int                `json:"score"`
}

// Recommendation is a ranked, actionable finding. Priority carries the
// answer's priority so rank ordering survives serialization.
type Recommendation struct {
	Title    string    `json:"title"`
	Detail   string    `json:"detail"`
	Priority Priority  `json:"priority"`
	Impact   string    `json:"impact"`
	Effort   string    `json:"effort"`
	Category AuditKind `json:"category"`
}

const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
	EffortMedium = "Medium"
	EffortLow    = "Low"
)

// AnalysisResult is the complete output of one audit.
type AnalysisResult struct {
	ID              uuid.UUID        `json:"id"`
	URL             string           `json:"url"`
	Timestamp       string           `json:"timestamp"`
	CROScore        int              `json:"cro_score"`
	UXScore         int              `json:"ux_score"`
	Grade           string           `json:"grade"`
	CROResults      []CategoryResult `json:"cro_results"`
	UXResults       []CategoryResult `json:"ux_results"`
	Recommendations []Recommendation `json:"recommendations"`
	ContentSummary  *ContentSummary  `json:"content_summary,omitempty"`
}

// MaxCROScore and MaxUXScore are the question-bank sizes the scores are out of.
const (
	MaxCROScore = 15
	MaxUXScore  = 18
)

// NewAnalysisResult stamps a fresh result with an ID and UTC timestamp.
func NewAnalysisResult(rawURL string) *AnalysisResult {
	return &AnalysisResult{
		ID:        uuid.New(),
		URL:       rawURL,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// ValidateAuditURL checks that rawURL is a non-empty absolute http(s) URL.
// It returns the trimmed URL or a MISSING_URL / INVALID_URL error.
func ValidateAuditURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", ErrMissingURL()
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", ErrInvalidURL(trimmed).WithCause(err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidURL(trimmed)
	}
	return trimmed, nil
}
