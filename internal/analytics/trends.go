package analytics

import (
	"context"
	"time"

	"github.com/jonathan/interview-assistant/internal/db"
	"github.com/jonathan/interview-assistant/internal/types"
)

// TrendPoint is one criterion score observed at an evaluation
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// SkillTrend is the time-ordered score history for one evaluation criterion
type SkillTrend struct {
	Criterion types.EvaluationCriteria `json:"criterion"`
	Points    []TrendPoint             `json:"points"`
	Delta     float64                  `json:"delta"` // last score minus first
}

// GetSkillTrends builds per-criterion score histories from an employee's
// stored evaluations, oldest first. Criteria never scored are omitted.
func (s *Service) GetSkillTrends(ctx context.Context, employeeID string) ([]SkillTrend, error) {
	evaluations, err := s.db.ListEvaluationsByEmployee(ctx, employeeID, 0)
	if err != nil {
		return nil, err
	}
	return ComputeSkillTrends(evaluations), nil
}

// ComputeSkillTrends groups criterion scores across evaluations into
// time-ordered trends. Evaluations must already be ordered oldest first.
func ComputeSkillTrends(evaluations []db.Evaluation) []SkillTrend {
	points := make(map[types.EvaluationCriteria][]TrendPoint)
	for _, evaluation := range evaluations {
		if evaluation.Analysis == nil {
			continue
		}
		for criterion, score := range evaluation.Analysis.CriterionScores {
			points[criterion] = append(points[criterion], TrendPoint{
				Date:  evaluation.CreatedAt,
				Score: score,
			})
		}
	}

	trends := make([]SkillTrend, 0, len(points))
	for _, criterion := range types.AllCriteria() {
		history, ok := points[criterion]
		if !ok {
			continue
		}
		trends = append(trends, SkillTrend{
			Criterion: criterion,
			Points:    history,
			Delta:     history[len(history)-1].Score - history[0].Score,
		})
	}
	return trends
}
