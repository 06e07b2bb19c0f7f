package audit

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/domain"
	"github.com/siteaudit/siteaudit/internal/llm"
)

// Evaluator answers one category's questions against a content summary.
// Implementations must return one AnsweredQuestion per input question, in
// input order, or an error.
type Evaluator interface {
	Evaluate(ctx context.Context, content *domain.ContentSummary, questions []domain.Question, category string) ([]domain.AnsweredQuestion, error)
}

// CompletionClient is the slice of the LLM client the AI evaluator needs.
type CompletionClient interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, result interface{}) (*llm.Usage, error)
}

// AIEvaluator asks a language model to answer the checklist.
type AIEvaluator struct {
	client CompletionClient
	logger *zap.Logger
}

// NewAIEvaluator creates a model-backed evaluator.
func NewAIEvaluator(client CompletionClient, logger *zap.Logger) *AIEvaluator {
	return &AIEvaluator{
		client: client,
		logger: logger,
	}
}

type answerSet struct {
	Answers []answerItem `json:"answers"`
}

type answerItem struct {
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	Evidence       string `json:"evidence"`
	Recommendation string `json:"recommendation"`
	Priority       string `json:"priority"`
}

// Evaluate implements Evaluator via a single model call per category.
func (e *AIEvaluator) Evaluate(ctx context.Context, content *domain.ContentSummary, questions []domain.Question, category string) ([]domain.AnsweredQuestion, error) {
	prompt := BuildCategoryPrompt(content, questions, category)

	var parsed answerSet
	usage, err := e.client.CompleteJSON(ctx, SystemPrompt, prompt, &parsed)
	if err != nil {
		return nil, fmt.Errorf("model call for %q: %w", category, err)
	}

	if len(parsed.Answers) != len(questions) {
		return nil, domain.ErrEvaluationFailed(category,
			fmt.Errorf("model returned %d answers for %d questions", len(parsed.Answers), len(questions)))
	}

	answers := make([]domain.AnsweredQuestion, len(questions))
	for i, item := range parsed.Answers {
		a, err := normalizeAnswer(item, questions[i])
		if err != nil {
			return nil, domain.ErrEvaluationFailed(category, fmt.Errorf("answer %d: %w", i+1, err))
		}
		answers[i] = a
	}

	if usage != nil {
		e.logger.Debug("category evaluated",
			zap.String("category", category),
			zap.Int("questions", len(questions)),
			zap.Int("input_tokens", usage.InputTokens),
			zap.Int("output_tokens", usage.OutputTokens))
	}

	return answers, nil
}

// normalizeAnswer validates enums and pins the question text to the bank's
// version, so model paraphrasing never leaks into results.
func normalizeAnswer(item answerItem, question domain.Question) (domain.AnsweredQuestion, error) {
	answer := domain.Answer(strings.ToLower(strings.TrimSpace(item.Answer)))
	if !answer.IsValid() {
		return domain.AnsweredQuestion{}, fmt.Errorf("invalid answer %q", item.Answer)
	}

	priority := domain.Priority(strings.ToLower(strings.TrimSpace(item.Priority)))
	if !priority.IsValid() {
		priority = domain.PriorityMedium
	}

	return domain.AnsweredQuestion{
		Question:       question.Text,
		Answer:         answer,
		Evidence:       strings.TrimSpace(item.Evidence),
		Recommendation: strings.TrimSpace(item.Recommendation),
		Priority:       priority,
	}, nil
}
