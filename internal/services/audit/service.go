package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/domain"
	"github.com/siteaudit/siteaudit/internal/llm"
)

// ContentExtractor produces a ContentSummary for a URL.
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (*domain.ContentSummary, error)
}

// EventEmitter sends telemetry events. Implementations must never let a
// failure surface to the caller.
type EventEmitter interface {
	Emit(ctx context.Context, event string, props map[string]any)
}

// Recorder receives evaluation outcome metrics.
type Recorder interface {
	RecordAnalysis(outcome string, duration time.Duration)
	RecordEvaluation(mode string)
}

// Service runs the full audit pipeline for one URL.
type Service struct {
	extractor ContentExtractor
	ai        Evaluator // nil when no model backend is configured
	heuristic *HeuristicEvaluator
	telemetry EventEmitter
	recorder  Recorder
	logger    *zap.Logger
}

// NewService wires the audit pipeline. ai may be nil; telemetry and
// recorder may be nil when those collaborators are disabled.
func NewService(extractor ContentExtractor, ai Evaluator, telemetry EventEmitter, recorder Recorder, logger *zap.Logger) *Service {
	return &Service{
		extractor: extractor,
		ai:        ai,
		heuristic: NewHeuristicEvaluator(),
		telemetry: telemetry,
		recorder:  recorder,
		logger:    logger,
	}
}

// Analyze validates the URL, extracts content, evaluates every category of
// both question banks, scores them, and assembles the final result.
//
// Evaluation failures degrade to heuristics per category and never abort
// the analysis; only input validation and fetch failures do.
func (s *Service) Analyze(ctx context.Context, rawURL string) (*domain.AnalysisResult, error) {
	start := time.Now()

	cleanURL, err := domain.ValidateAuditURL(rawURL)
	if err != nil {
		s.record("invalid_input", start)
		return nil, err
	}

	s.emit(ctx, "analysis.started", map[string]any{"url": cleanURL})

	content, err := s.extractor.Extract(ctx, cleanURL)
	if err != nil {
		s.record("fetch_failed", start)
		s.emit(ctx, "analysis.failed", map[string]any{"url": cleanURL, "stage": "fetch"})
		return nil, err
	}

	croResults := s.evaluateBank(ctx, content, CROCategories())
	uxResults := s.evaluateBank(ctx, content, UXCategories())

	result := domain.NewAnalysisResult(cleanURL)
	result.CROScore = BankScore(croResults)
	result.UXScore = BankScore(uxResults)
	result.Grade = Grade(result.CROScore, result.UXScore)
	result.CROResults = croResults
	result.UXResults = uxResults
	result.Recommendations = RankRecommendations(croResults, uxResults)
	result.ContentSummary = content

	s.record("completed", start)
	s.emit(ctx, "analysis.completed", map[string]any{
		"url":       cleanURL,
		"cro_score": result.CROScore,
		"ux_score":  result.UXScore,
		"grade":     result.Grade,
	})

	s.logger.Info("analysis completed",
		zap.String("url", cleanURL),
		zap.String("analysis_id", result.ID.String()),
		zap.Int("cro_score", result.CROScore),
		zap.Int("ux_score", result.UXScore),
		zap.String("grade", result.Grade),
		zap.Int("recommendations", len(result.Recommendations)),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}

// evaluateBank runs every category of one bank sequentially. Each category
// gets its own model call; a failed call degrades that category to the
// heuristic evaluator with a cause note.
func (s *Service) evaluateBank(ctx context.Context, content *domain.ContentSummary, categories []domain.Category) []domain.CategoryResult {
	results := make([]domain.CategoryResult, 0, len(categories))
	for _, cat := range categories {
		answers := s.evaluateCategory(ctx, content, cat)
		results = append(results, domain.CategoryResult{
			Category:  cat.Name,
			Kind:      cat.Kind,
			Questions: answers,
			Score:     CategoryScore(answers),
		})
	}
	return results
}

func (s *Service) evaluateCategory(ctx context.Context, content *domain.ContentSummary, cat domain.Category) []domain.AnsweredQuestion {
	if s.ai != nil {
		answers, err := s.ai.Evaluate(ctx, content, cat.Questions, cat.Name)
		if err == nil {
			s.recordEvaluation("ai")
			return answers
		}

		cause := llm.ClassifyFailure(err)
		s.logger.Warn("AI evaluation failed, using heuristics",
			zap.String("category", cat.Name),
			zap.String("cause", string(cause)),
			zap.Error(err))

		s.recordEvaluation("heuristic_fallback")
		answers, _ = s.heuristic.WithCauseNote(cause.Note()).Evaluate(ctx, content, cat.Questions, cat.Name)
		return answers
	}

	s.recordEvaluation("heuristic")
	answers, _ := s.heuristic.Evaluate(ctx, content, cat.Questions, cat.Name)
	return answers
}

func (s *Service) emit(ctx context.Context, event string, props map[string]any) {
	if s.telemetry != nil {
		s.telemetry.Emit(ctx, event, props)
	}
}

func (s *Service) record(outcome string, start time.Time) {
	if s.recorder != nil {
		s.recorder.RecordAnalysis(outcome, time.Since(start))
	}
}

func (s *Service) recordEvaluation(mode string) {
	if s.recorder != nil {
		s.recorder.RecordEvaluation(mode)
	}
}
