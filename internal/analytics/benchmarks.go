// Package analytics computes department performance benchmarks and per-skill
// trends from completed interviews.
package analytics

import (
	"context"
	"sort"

	"github.com/jonathan/interview-assistant/internal/db"
	"github.com/jonathan/interview-assistant/internal/types"
)

// Default benchmarks used when a department has no completed interviews yet
const (
	DefaultAverageScore = 7.0
	DefaultTopQuartile  = 8.5
)

// Service computes analytics over stored interview outcomes
type Service struct {
	db *db.DB
}

// NewService creates an analytics service backed by the given database
func NewService(database *db.DB) *Service {
	return &Service{db: database}
}

// GetDepartmentBenchmarks computes benchmarks from the department's completed
// interview scores. Departments without any completed interviews get the
// default benchmarks, with median and bottom quartile unset.
func (s *Service) GetDepartmentBenchmarks(ctx context.Context, department string) (types.DepartmentBenchmarks, error) {
	scores, err := s.db.ListCompletedScoresByDepartment(ctx, department, 0)
	if err != nil {
		return types.DepartmentBenchmarks{}, err
	}
	return ComputeBenchmarks(scores), nil
}

// ComputeBenchmarks derives department benchmarks from a score sample.
// An empty sample yields the defaults.
func ComputeBenchmarks(scores []float64) types.DepartmentBenchmarks {
	if len(scores) == 0 {
		return types.DepartmentBenchmarks{
			AverageScore: DefaultAverageScore,
			TopQuartile:  DefaultTopQuartile,
		}
	}

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	median := percentile(sorted, 0.5)
	bottom := percentile(sorted, 0.25)

	return types.DepartmentBenchmarks{
		AverageScore:   mean(sorted),
		TopQuartile:    percentile(sorted, 0.75),
		MedianScore:    &median,
		BottomQuartile: &bottom,
	}
}

// Defaults serves the default benchmarks for every department. It backs CLI
// demo runs where no database is configured.
type Defaults struct{}

// GetDepartmentBenchmarks returns the default benchmarks
func (Defaults) GetDepartmentBenchmarks(_ context.Context, _ string) (types.DepartmentBenchmarks, error) {
	return ComputeBenchmarks(nil), nil
}

// mean computes the arithmetic mean of a non-empty sample
func mean(scores []float64) float64 {
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// percentile computes the p-th percentile of a sorted non-empty sample using
// linear interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p * float64(len(sorted)-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}

	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
