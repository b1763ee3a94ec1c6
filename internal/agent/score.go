package agent

import (
	"math"

	"github.com/jonathan/interview-assistant/internal/types"
)

// Completeness weights for recommendation items. An item carrying every
// weighted field scores 1.0.
const (
	weightActionItems    = 0.3
	weightTimeline       = 0.2
	weightSuccessMetrics = 0.3
	weightEstimatedCost  = 0.1
	weightROIProjection  = 0.1
)

// QuestionQuality scores a generated question set on variety and completeness.
// The result is in [0,1]; an empty list scores exactly 0.
func QuestionQuality(questions []types.GeneratedQuestion) float64 {
	if len(questions) == 0 {
		return 0.0
	}

	questionTypes := make(map[types.QuestionType]struct{})
	categories := make(map[types.QuestionCategory]struct{})
	for _, q := range questions {
		questionTypes[q.Type] = struct{}{}
		categories[q.Category] = struct{}{}
	}

	varietyScore := float64(len(questionTypes)+len(categories)) / 10
	completenessScore := float64(len(questions)) / 10 // target 10 questions

	return math.Min(1.0, (varietyScore+completenessScore)/2)
}

// AnalysisConfidence scores how much trust to place in an analysis result.
// Complete, specific responses and consistent criterion scores raise it.
// The result is clamped to [0.3, 1.0]; a missing score map or missing
// response quality yields exactly 0.5.
func AnalysisConfidence(analysis *types.AnalysisResult) float64 {
	if analysis == nil || len(analysis.CriterionScores) == 0 || analysis.ResponseQuality == nil {
		return 0.5
	}

	completeness := analysis.ResponseQuality.Completeness
	specificity := analysis.ResponseQuality.Specificity

	scores := make([]float64, 0, len(analysis.CriterionScores))
	for _, score := range analysis.CriterionScores {
		scores = append(scores, score)
	}
	consistency := math.Max(0.5, 1.0-scoreDeviation(scores)/10)

	confidence := (completeness + specificity + consistency) / 3
	return clamp(confidence, 0.3, 1.0)
}

// RecommendationQuality scores a recommendation set on type variety, per-item
// completeness, and prioritization. The result is clamped to [0.3, 1.0]; an
// empty item list scores exactly 0.3.
func RecommendationQuality(set *types.RecommendationSet) float64 {
	if set == nil || len(set.Items) == 0 {
		return 0.3
	}

	recTypes := make(map[types.RecommendationType]struct{})
	priorities := make(map[int]struct{})
	completenessSum := 0.0

	for _, item := range set.Items {
		recTypes[item.Type] = struct{}{}
		priorities[item.Priority] = struct{}{}
		completenessSum += itemCompleteness(item)
	}

	varietyScore := math.Min(1.0, float64(len(recTypes))/3) // target 3+ types
	avgCompleteness := completenessSum / float64(len(set.Items))

	priorityScore := 0.5
	if len(priorities) > 1 {
		priorityScore = 1.0
	}

	quality := (varietyScore + avgCompleteness + priorityScore) / 3
	return clamp(quality, 0.3, 1.0)
}

// itemCompleteness sums the fixed weights of each present non-empty field
func itemCompleteness(item types.RecommendationItem) float64 {
	score := 0.0
	if len(item.ActionItems) > 0 {
		score += weightActionItems
	}
	if item.Timeline != "" {
		score += weightTimeline
	}
	if len(item.SuccessMetrics) > 0 {
		score += weightSuccessMetrics
	}
	if item.EstimatedCost != "" {
		score += weightEstimatedCost
	}
	if item.ROIProjection != "" {
		score += weightROIProjection
	}
	return score
}

// scoreDeviation computes the population standard deviation of scores.
// Fewer than two scores yields 0.
func scoreDeviation(scores []float64) float64 {
	if len(scores) < 2 {
		return 0
	}
	mean := 0.0
	for _, s := range scores {
		mean += s
	}
	mean /= float64(len(scores))

	variance := 0.0
	for _, s := range scores {
		variance += (s - mean) * (s - mean)
	}
	variance /= float64(len(scores))

	return math.Sqrt(variance)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
