package audit

import (
	"context"
	"strings"

	"github.com/siteaudit/siteaudit/internal/domain"
)

// HeuristicEvaluator answers questions from static page signals alone. It
// is the fallback when no model backend is configured or a model call
// fails, and it never returns an error.
//
// Matching walks the rule table in order and the first rule whose keyword
// occurs at a word boundary in the lower-cased question text wins.
// Questions matching no rule get the default answer: needs_work, generic
// advice, medium priority.
type HeuristicEvaluator struct {
	// causeNote, when set, is appended to generic evidence so users know
	// why the AI verdict is missing.
	causeNote string
}

// NewHeuristicEvaluator creates the rule-based evaluator.
func NewHeuristicEvaluator() *HeuristicEvaluator {
	return &HeuristicEvaluator{}
}

// WithCauseNote returns a copy that tags its answers with the reason the
// AI path was unavailable.
func (h *HeuristicEvaluator) WithCauseNote(note string) *HeuristicEvaluator {
	return &HeuristicEvaluator{causeNote: note}
}

// Evaluate implements Evaluator. The error is always nil.
func (h *HeuristicEvaluator) Evaluate(_ context.Context, content *domain.ContentSummary, questions []domain.Question, _ string) ([]domain.AnsweredQuestion, error) {
	answers := make([]domain.AnsweredQuestion, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, h.answer(content, q.Text))
	}
	return answers, nil
}

type rule struct {
	keywords []string
	apply    func(*domain.ContentSummary, string) domain.AnsweredQuestion
}

func (h *HeuristicEvaluator) answer(content *domain.ContentSummary, question string) domain.AnsweredQuestion {
	lower := strings.ToLower(question)
	for _, r := range heuristicRules {
		for _, kw := range r.keywords {
			if containsKeyword(lower, kw) {
				return r.apply(content, question)
			}
		}
	}
	return h.defaultAnswer(content, question)
}

// containsKeyword reports whether kw occurs in text starting at a word
// boundary. Inflected forms still match ("forms", "CTAs", "clearly");
// embedded fragments do not ("form" inside "informative").
func containsKeyword(text, kw string) bool {
	for i := 0; ; {
		j := strings.Index(text[i:], kw)
		if j < 0 {
			return false
		}
		j += i
		if j == 0 || !isWordChar(text[j-1]) {
			return true
		}
		i = j + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

func (h *HeuristicEvaluator) defaultAnswer(_ *domain.ContentSummary, question string) domain.AnsweredQuestion {
	evidence := "Could not be verified from static page content."
	if h.causeNote != "" {
		evidence += " " + h.causeNote + "."
	}
	return domain.AnsweredQuestion{
		Question:       question,
		Answer:         domain.AnswerNeedsWork,
		Evidence:       evidence,
		Recommendation: "Review this item manually or rerun with AI analysis enabled.",
		Priority:       domain.PriorityMedium,
	}
}

var heuristicRules = []rule{
	{
		keywords: []string{"value proposition", "clear"},
		apply: func(c *domain.ContentSummary, q string) domain.AnsweredQuestion {
			if c.Title != "" && c.Description != "" {
				return answered(q, domain.AnswerYes, "Page has both a title and a meta description.",
					"Keep the headline and description focused on the primary benefit.", domain.PriorityLow)
			}
			return answered(q, domain.AnswerNeedsWork, "Page is missing a title or meta description.",
				"Add a concise title and meta description that state the value proposition.", domain.PriorityMedium)
		},
	},
	{
		keywords: []string{"call-to-action", "cta"},
		apply: func(c *domain.ContentSummary, q string) domain.AnsweredQuestion {
			if c.Buttons > 0 {
				return answered(q, domain.AnswerYes, "Page contains at least one button element.",
					"Make sure the primary CTA stands out from secondary actions.", domain.PriorityLow)
			}
			return answered(q, domain.AnswerNo, "No buttons or submit inputs were found on the page.",
				"Add a prominent call-to-action button above the fold.", domain.PriorityHigh)
		},
	},
	{
		keywords: []string{"testimonial", "review"},
		apply: func(c *domain.ContentSummary, q string) domain.AnsweredQuestion {
			if headingsContain(c, "testimonial", "review", "customer") {
				return answered(q, domain.AnswerYes, "Headings reference testimonials, reviews, or customers.",
					"Keep social proof close to conversion points.", domain.PriorityLow)
			}
			return answered(q, domain.AnswerNo, "No headings mention testimonials, reviews, or customers.",
				"Add customer testimonials or review highlights near the primary CTA.", domain.PriorityMedium)
		},
	},
	{
		keywords: []string{"form", "lead capture"},
		apply: func(c *domain.ContentSummary, q string) domain.AnsweredQuestion {
			if c.Forms > 0 {
				return answered(q, domain.AnswerYes, "Page contains at least one form.",
					"Keep required fields to a minimum to reduce friction.", domain.PriorityLow)
			}
			return answered(q, domain.AnswerNo, "No forms were found on the page.",
				"Add a lead capture form so visitors can convert.", domain.PriorityHigh)
		},
	},
	{
		keywords: []string{"mobile", "responsive"},
		apply: func(_ *domain.ContentSummary, q string) domain.AnsweredQuestion {
			return answered(q, domain.AnswerNeedsWork, "Mobile behavior cannot be judged from static HTML.",
				"Test the page on real devices or an emulator.", domain.PriorityMedium)
		},
	},
	{
		keywords: []string{"speed", "load"},
		apply: func(_ *domain.ContentSummary, q string) domain.AnsweredQuestion {
			return answered(q, domain.AnswerNeedsWork, "Load performance cannot be judged from static HTML.",
				"Measure with PageSpeed Insights or WebPageTest.", domain.PriorityMedium)
		},
	},
	{
		keywords: []string{"accessibility", "alt text"},
		apply: func(c *domain.ContentSummary, q string) domain.AnsweredQuestion {
			if c.TotalImages > 0 && len(c.Images) == c.TotalImages {
				return answered(q, domain.AnswerYes, "Every image on the page carries alt text.",
					"Keep alt text short and descriptive.", domain.PriorityLow)
			}
			if c.TotalImages > 0 {
				return answered(q, domain.AnswerNeedsWork, "Some images are missing alt text.",
					"Add descriptive alt text to every functional image.", domain.PriorityMedium)
			}
			return answered(q, domain.AnswerNeedsWork, "No images found to assess.",
				"Audit accessibility with an automated checker and manual review.", domain.PriorityMedium)
		},
	},
	{
		keywords: []string{"navigation", "hierarchy"},
		apply: func(c *domain.ContentSummary, q string) domain.AnsweredQuestion {
			if len(c.Headings) > 0 {
				return answered(q, domain.AnswerYes, "Page has a heading structure.",
					"Verify heading levels nest logically.", domain.PriorityLow)
			}
			return answered(q, domain.AnswerNeedsWork, "Page has no h1-h3 headings.",
				"Add a clear heading hierarchy to structure the page.", domain.PriorityMedium)
		},
	},
	{
		keywords: []string{"tracking", "analytics"},
		apply: func(_ *domain.ContentSummary, q string) domain.AnsweredQuestion {
			return answered(q, domain.AnswerNeedsWork, "Analytics wiring cannot be verified from static HTML.",
				"Confirm tag firing with your analytics debugger.", domain.PriorityMedium)
		},
	},
	{
		keywords: []string{"a/b test", "experiment"},
		apply: func(_ *domain.ContentSummary, q string) domain.AnsweredQuestion {
			return answered(q, domain.AnswerNeedsWork, "Running experiments cannot be detected from static HTML.",
				"Check your testing tool for overlapping experiments.", domain.PriorityMedium)
		},
	},
	{
		keywords: []string{"urgency", "scarcity"},
		apply: func(c *domain.ContentSummary, q string) domain.AnsweredQuestion {
			if headingsContain(c, "limited", "offer", "sale", "time") {
				return answered(q, domain.AnswerYes, "Headings carry urgency or scarcity wording.",
					"Make sure scarcity claims are truthful.", domain.PriorityLow)
			}
			return answered(q, domain.AnswerNo, "No urgency or scarcity wording found in headings.",
				"Consider a legitimate urgency cue if it fits the offer.", domain.PriorityMedium)
		},
	},
	{
		keywords: []string{"pricing", "cost"},
		apply: func(c *domain.ContentSummary, q string) domain.AnsweredQuestion {
			if headingsContain(c, "price", "cost", "fee", "$") {
				return answered(q, domain.AnswerYes, "Headings reference pricing information.",
					"Keep total cost visible before checkout.", domain.PriorityLow)
			}
			return answered(q, domain.AnswerNeedsWork, "No pricing wording found in headings.",
				"Surface pricing earlier so visitors are not surprised at checkout.", domain.PriorityMedium)
		},
	},
}

func answered(question string, a domain.Answer, evidence, rec string, p domain.Priority) domain.AnsweredQuestion {
	return domain.AnsweredQuestion{
		Question:       question,
		Answer:         a,
		Evidence:       evidence,
		Recommendation: rec,
		Priority:       p,
	}
}

func headingsContain(c *domain.ContentSummary, keywords ...string) bool {
	for _, h := range c.Headings {
		lower := strings.ToLower(h)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
