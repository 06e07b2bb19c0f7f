package audit

import (
	"math"

	"github.com/siteaudit/siteaudit/internal/domain"
)

// CalculateScore sums point values across answers: yes=1.0,
// needs_work=0.5, anything else 0.0. No rounding.
func CalculateScore(questions []domain.AnsweredQuestion) float64 {
	var sum float64
	for _, q := range questions {
		sum += q.Answer.Points()
	}
	return sum
}

// CategoryScore converts a category's answers to an integer percent.
func CategoryScore(questions []domain.AnsweredQuestion) int {
	if len(questions) == 0 {
		return 0
	}
	return int(math.Round(CalculateScore(questions) / float64(len(questions)) * 100))
}

// BankScore sums point values across all categories of one bank and
// rounds to an integer, 0..len(bank questions).
func BankScore(results []domain.CategoryResult) int {
	var sum float64
	for _, r := range results {
		sum += CalculateScore(r.Questions)
	}
	return int(math.Round(sum))
}

// Grade maps the two bank scores to a letter. Both banks weigh equally;
// lower bounds are inclusive.
func Grade(croScore, uxScore int) string {
	total := float64(croScore)/domain.MaxCROScore*0.5 + float64(uxScore)/domain.MaxUXScore*0.5
	switch {
	case total >= 0.90:
		return "A"
	case total >= 0.80:
		return "B"
	case total >= 0.70:
		return "C"
	case total >= 0.60:
		return "D"
	default:
		return "F"
	}
}
