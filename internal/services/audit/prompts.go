package audit

import (
	"fmt"
	"strings"

	"github.com/siteaudit/siteaudit/internal/domain"
)

// SystemPrompt frames the model as an objective auditor. Kept stable so
// identical pages hit the response cache.
const SystemPrompt = `You are an objective Conversion Rate Optimization (CRO) and User Experience (UX) expert auditing a web page.

You are given a structured summary of the page's static HTML and a numbered checklist of audit questions for one category. Answer every question from the evidence in the summary alone.

## Rules

1. Answer each question with exactly one of: "yes", "no", "needs_work".
2. Use "needs_work" when the summary gives partial or indirect evidence, or when the question cannot be decided from static HTML at all.
3. Cite the concrete signal you used in the evidence field. Never invent page content.
4. Give one short, actionable recommendation per question.
5. Set priority to "high" for findings that block conversions, "medium" for meaningful improvements, "low" for polish.

## Output Format

Return a JSON object:
{
  "answers": [
    {
      "question": "<question text verbatim>",
      "answer": "yes|no|needs_work",
      "evidence": "<what in the summary supports this>",
      "recommendation": "<one actionable step>",
      "priority": "high|medium|low"
    }
  ]
}

Return one answer per question, in the same order as asked.`

// BuildCategoryPrompt renders the user prompt for one category's questions.
func BuildCategoryPrompt(content *domain.ContentSummary, questions []domain.Question, category string) string {
	var b strings.Builder

	b.WriteString("# Page Summary\n\n")
	fmt.Fprintf(&b, "Title: %s\n", orNone(content.Title))
	fmt.Fprintf(&b, "Meta description: %s\n", orNone(content.Description))
	fmt.Fprintf(&b, "Headings (h1-h3, in order): %s\n", orNone(strings.Join(content.Headings, " | ")))
	fmt.Fprintf(&b, "Number of links: %d\n", len(content.Links))
	fmt.Fprintf(&b, "Number of forms: %d\n", content.Forms)
	fmt.Fprintf(&b, "Number of buttons (incl. submit inputs): %d\n", content.Buttons)

	if cov, ok := content.AltCoverage(); ok {
		fmt.Fprintf(&b, "Images: %d total, %.0f%% with alt text\n", content.TotalImages, cov*100)
	} else {
		b.WriteString("Images: none\n")
	}

	fmt.Fprintf(&b, "\n# Category: %s\n\n", category)
	b.WriteString("Answer these questions:\n\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
	}

	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
