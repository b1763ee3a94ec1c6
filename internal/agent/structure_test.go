package agent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-assistant/internal/types"
)

func TestStaticQuestionStructurer(t *testing.T) {
	questions := StaticQuestionStructurer("any raw text", Context{})

	require.Len(t, questions, 8)
	for i, q := range questions {
		assert.Equal(t, fmt.Sprintf("q_%d", i), q.ID)
		assert.Equal(t, fmt.Sprintf("Sample question %d", i), q.Text)
		assert.Equal(t, types.QuestionBehavioral, q.Type)
		assert.Equal(t, types.CategorySkillsAssessment, q.Category)
		assert.Equal(t, 1, q.Weight)
		assert.Equal(t, []string{"specific examples", "quantifiable results"}, q.ExpectedElements)
	}
}

func TestStaticAnalysisStructurer(t *testing.T) {
	analysis := StaticAnalysisStructurer("", Context{})

	require.NotNil(t, analysis)
	assert.Len(t, analysis.CriterionScores, len(types.AllCriteria()))
	for _, criterion := range types.AllCriteria() {
		score, ok := analysis.CriterionScores[criterion]
		assert.True(t, ok, "missing score for %s", criterion)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 10.0)
	}
	assert.NotEmpty(t, analysis.OverallAssessment.Summary)
	assert.NotEmpty(t, analysis.DetailedFeedback.Strengths)
	assert.NotEmpty(t, analysis.DetailedFeedback.DevelopmentAreas)
	require.NotNil(t, analysis.ResponseQuality)
	assert.Equal(t, 0.9, analysis.ResponseQuality.Completeness)
	assert.Equal(t, 0.85, analysis.ResponseQuality.Specificity)
	assert.Equal(t, 0.95, analysis.ResponseQuality.Relevance)
}

func TestStaticRecommendationStructurer(t *testing.T) {
	set := StaticRecommendationStructurer("", Context{})

	require.NotNil(t, set)
	require.Len(t, set.Items, 3)

	seenTypes := make(map[types.RecommendationType]struct{})
	for _, item := range set.Items {
		seenTypes[item.Type] = struct{}{}
		assert.GreaterOrEqual(t, item.Priority, 1)
		assert.LessOrEqual(t, item.Priority, 5)
		assert.NotEmpty(t, item.ActionItems)
		assert.NotEmpty(t, item.Timeline)
		assert.NotEmpty(t, item.SuccessMetrics)
	}
	assert.Len(t, seenTypes, 3)
	assert.Equal(t, 2, set.HighPriorityCount())
	assert.NotEmpty(t, set.LongTermPathway.SixMonthGoals)
	assert.NotEmpty(t, set.RiskMitigation.PotentialRisks)
}

func TestStaticStructurers_IgnoreRawText(t *testing.T) {
	// Placeholder structurers are deterministic regardless of generated text.
	assert.Equal(t, StaticQuestionStructurer("", nil), StaticQuestionStructurer("{malformed", nil))
	assert.Equal(t, StaticAnalysisStructurer("", nil), StaticAnalysisStructurer("other", nil))
	assert.Equal(t, StaticRecommendationStructurer("", nil), StaticRecommendationStructurer("other", nil))
}
