package audit

import (
	"testing"

	"github.com/siteaudit/siteaudit/internal/domain"
)

func answersOf(values ...domain.Answer) []domain.AnsweredQuestion {
	out := make([]domain.AnsweredQuestion, len(values))
	for i, v := range values {
		out[i] = domain.AnsweredQuestion{Question: "q", Answer: v}
	}
	return out
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name    string
		answers []domain.AnsweredQuestion
		want    float64
	}{
		{"empty", nil, 0},
		{"all yes", answersOf(domain.AnswerYes, domain.AnswerYes), 2.0},
		{"mixed", answersOf(domain.AnswerYes, domain.AnswerNeedsWork, domain.AnswerNo), 1.5},
		{"unknown counts as zero", answersOf(domain.Answer("maybe")), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateScore(tt.answers); got != tt.want {
				t.Errorf("CalculateScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateScoreIdempotent(t *testing.T) {
	answers := answersOf(domain.AnswerYes, domain.AnswerNeedsWork, domain.AnswerNo)
	first := CalculateScore(answers)
	second := CalculateScore(answers)
	if first != second {
		t.Errorf("scoring mutated its input: %v then %v", first, second)
	}
}

func TestCategoryScore(t *testing.T) {
	tests := []struct {
		name    string
		answers []domain.AnsweredQuestion
		want    int
	}{
		{"empty category", nil, 0},
		{"all yes", answersOf(domain.AnswerYes, domain.AnswerYes), 100},
		{"all no", answersOf(domain.AnswerNo, domain.AnswerNo), 0},
		{"two of four points", answersOf(domain.AnswerYes, domain.AnswerYes, domain.AnswerNo, domain.AnswerNo), 50},
		{"rounding up", answersOf(domain.AnswerYes, domain.AnswerNeedsWork, domain.AnswerNo), 50},
		{"one needs_work", answersOf(domain.AnswerNeedsWork), 50},
		{"two thirds", answersOf(domain.AnswerYes, domain.AnswerYes, domain.AnswerNo), 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryScore(tt.answers); got != tt.want {
				t.Errorf("CategoryScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBankScore(t *testing.T) {
	results := []domain.CategoryResult{
		{Questions: answersOf(domain.AnswerYes, domain.AnswerNeedsWork)},
		{Questions: answersOf(domain.AnswerNeedsWork)},
	}
	// 1.0 + 0.5 + 0.5 = 2.0
	if got := BankScore(results); got != 2 {
		t.Errorf("BankScore() = %d, want 2", got)
	}

	// 1.0 + 0.5 = 1.5 rounds to 2
	halfUp := []domain.CategoryResult{{Questions: answersOf(domain.AnswerYes, domain.AnswerNeedsWork)}}
	if got := BankScore(halfUp); got != 2 {
		t.Errorf("BankScore() = %d, want 2 (round half up)", got)
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		name string
		cro  int
		ux   int
		want string
	}{
		{"perfect", 15, 18, "A"},
		{"zero", 0, 0, "F"},
		{"twelve each", 12, 12, "C"}, // 0.4 + 0.333... = 0.733
		{"exactly A boundary", 12, 18, "A"}, // 0.4 + 0.5 = 0.90
		{"solid B", 12, 16, "B"},
		{"exactly D boundary", 3, 18, "D"}, // 0.1 + 0.5 = 0.60
		{"high D", 9, 11, "D"},
		{"low", 5, 5, "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(tt.cro, tt.ux); got != tt.want {
				t.Errorf("Grade(%d, %d) = %q, want %q", tt.cro, tt.ux, got, tt.want)
			}
		})
	}
}

func TestGradeBoundsInclusive(t *testing.T) {
	// (12, 18) sits exactly on the 0.90 line and must grade A.
	if got := Grade(12, 18); got != "A" {
		t.Errorf("Grade(12, 18) = %q, want A (inclusive lower bound)", got)
	}
	// (12, 0) sits exactly on 0.40 and must stay F.
	if got := Grade(12, 0); got != "F" {
		t.Errorf("Grade(12, 0) = %q, want F", got)
	}
}
