package audit

import "github.com/siteaudit/siteaudit/internal/domain"

const (
	maxHighRecommendations   = 5
	maxMediumRecommendations = 3
)

// RankRecommendations turns non-passing answers into an ordered action
// list: up to 5 high-priority findings ("Fix: ..."), then up to 3
// medium-priority ones ("Improve: ..."), preserving category and question
// order. Low-priority findings never surface here.
func RankRecommendations(croResults, uxResults []domain.CategoryResult) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, maxHighRecommendations+maxMediumRecommendations)

	recs = appendPass(recs, croResults, uxResults, domain.PriorityHigh, maxHighRecommendations,
		"Fix: ", domain.ImpactHigh, domain.EffortMedium)
	recs = appendPass(recs, croResults, uxResults, domain.PriorityMedium, maxMediumRecommendations,
		"Improve: ", domain.ImpactMedium, domain.EffortLow)

	return recs
}

func appendPass(recs []domain.Recommendation, croResults, uxResults []domain.CategoryResult, priority domain.Priority, limit int, titlePrefix, impact, effort string) []domain.Recommendation {
	taken := 0
	collect := func(results []domain.CategoryResult, kind domain.AuditKind) {
		for _, cat := range results {
			for _, q := range cat.Questions {
				if taken >= limit {
					return
				}
				if q.Priority != priority || q.Answer == domain.AnswerYes {
					continue
				}
				recs = append(recs, domain.Recommendation{
					Title:    titlePrefix + q.Question,
					Detail:   q.Recommendation,
					Priority: priority,
					Impact:   impact,
					Effort:   effort,
					Category: kind,
				})
				taken++
			}
		}
	}

	collect(croResults, domain.AuditKindCRO)
	collect(uxResults, domain.AuditKindUX)
	return recs
}
