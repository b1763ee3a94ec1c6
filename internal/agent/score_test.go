package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-assistant/internal/types"
)

func TestQuestionQuality_EmptyList(t *testing.T) {
	assert.Equal(t, 0.0, QuestionQuality(nil))
	assert.Equal(t, 0.0, QuestionQuality([]types.GeneratedQuestion{}))
}

func TestQuestionQuality_UniformSet(t *testing.T) {
	// Eight questions of one type and one category:
	// variety (1+1)/10 = 0.2, completeness 8/10 = 0.8, score 0.5.
	questions := StaticQuestionStructurer("", nil)

	assert.InDelta(t, 0.5, QuestionQuality(questions), 1e-9)
}

func TestQuestionQuality_VarietyRaisesScore(t *testing.T) {
	uniform := make([]types.GeneratedQuestion, 4)
	for i := range uniform {
		uniform[i] = types.GeneratedQuestion{
			Type:     types.QuestionBehavioral,
			Category: types.CategorySkillsAssessment,
		}
	}

	varied := []types.GeneratedQuestion{
		{Type: types.QuestionBehavioral, Category: types.CategorySkillsAssessment},
		{Type: types.QuestionTechnical, Category: types.CategoryProblemSolving},
		{Type: types.QuestionSituational, Category: types.CategoryLeadership},
		{Type: types.QuestionCareerDevelopment, Category: types.CategoryCareerGrowth},
	}

	assert.Greater(t, QuestionQuality(varied), QuestionQuality(uniform))
}

func TestQuestionQuality_CappedAtOne(t *testing.T) {
	questions := make([]types.GeneratedQuestion, 20)
	allTypes := []types.QuestionType{
		types.QuestionBehavioral, types.QuestionTechnical,
		types.QuestionSituational, types.QuestionCareerDevelopment,
	}
	allCategories := []types.QuestionCategory{
		types.CategorySkillsAssessment, types.CategoryLeadership,
		types.CategoryProblemSolving, types.CategoryCommunication,
		types.CategoryCulturalFit, types.CategoryCareerGrowth,
	}
	for i := range questions {
		questions[i] = types.GeneratedQuestion{
			Type:     allTypes[i%len(allTypes)],
			Category: allCategories[i%len(allCategories)],
		}
	}

	assert.Equal(t, 1.0, QuestionQuality(questions))
}

func TestAnalysisConfidence_MissingInputs(t *testing.T) {
	assert.Equal(t, 0.5, AnalysisConfidence(nil))
	assert.Equal(t, 0.5, AnalysisConfidence(&types.AnalysisResult{}))
	assert.Equal(t, 0.5, AnalysisConfidence(&types.AnalysisResult{
		CriterionScores: map[types.EvaluationCriteria]float64{types.CriteriaTeamwork: 8.0},
	}))
	assert.Equal(t, 0.5, AnalysisConfidence(&types.AnalysisResult{
		ResponseQuality: &types.ResponseQuality{Completeness: 0.9, Specificity: 0.9},
	}))
}

func TestAnalysisConfidence_StaticAnalysis(t *testing.T) {
	// completeness 0.9, specificity 0.85, population stdev of the eight
	// canned scores is ~0.484, so consistency is ~0.9516.
	analysis := StaticAnalysisStructurer("", nil)

	confidence := AnalysisConfidence(analysis)

	assert.InDelta(t, 0.9005, confidence, 0.001)
	assert.GreaterOrEqual(t, confidence, 0.3)
	assert.Less(t, confidence, 1.0)
}

func TestAnalysisConfidence_ClampedToFloor(t *testing.T) {
	analysis := &types.AnalysisResult{
		CriterionScores: map[types.EvaluationCriteria]float64{
			types.CriteriaTechnicalSkills: 1.0,
			types.CriteriaCommunication:   9.0,
		},
		ResponseQuality: &types.ResponseQuality{Completeness: 0.0, Specificity: 0.0},
	}

	assert.Equal(t, 0.3, AnalysisConfidence(analysis))
}

func TestAnalysisConfidence_SingleScoreHasFullConsistency(t *testing.T) {
	analysis := &types.AnalysisResult{
		CriterionScores: map[types.EvaluationCriteria]float64{
			types.CriteriaTechnicalSkills: 8.0,
		},
		ResponseQuality: &types.ResponseQuality{Completeness: 1.0, Specificity: 1.0},
	}

	// Fewer than two scores means zero deviation, consistency 1.0.
	assert.Equal(t, 1.0, AnalysisConfidence(analysis))
}

func TestRecommendationQuality_EmptySet(t *testing.T) {
	assert.Equal(t, 0.3, RecommendationQuality(nil))
	assert.Equal(t, 0.3, RecommendationQuality(&types.RecommendationSet{}))
}

func TestRecommendationQuality_SingleCompleteItem(t *testing.T) {
	// One type: variety 1/3. Fully populated item: completeness 1.0.
	// Single priority: 0.5. Quality (0.333 + 1.0 + 0.5) / 3 = 0.611.
	set := &types.RecommendationSet{
		Items: []types.RecommendationItem{
			{
				Type:           types.RecommendTraining,
				Priority:       1,
				ActionItems:    []string{"Enroll in program"},
				Timeline:       "6 months",
				SuccessMetrics: []string{"Completion"},
				EstimatedCost:  "$1,000",
				ROIProjection:  "High",
			},
		},
	}

	assert.InDelta(t, 0.611, RecommendationQuality(set), 0.001)
}

func TestRecommendationQuality_StaticSet(t *testing.T) {
	// Three distinct types, fully populated items, three distinct priorities.
	set := StaticRecommendationStructurer("", nil)

	assert.Equal(t, 1.0, RecommendationQuality(set))
}

func TestRecommendationQuality_SparseItemsClampToFloor(t *testing.T) {
	set := &types.RecommendationSet{
		Items: []types.RecommendationItem{
			{Type: types.RecommendTraining, Priority: 1},
		},
	}

	// variety 1/3, completeness 0, single priority 0.5: (0.833)/3 = 0.278,
	// clamped up to the 0.3 floor.
	assert.Equal(t, 0.3, RecommendationQuality(set))
}

func TestScoringIsDeterministic(t *testing.T) {
	questions := StaticQuestionStructurer("", nil)
	analysis := StaticAnalysisStructurer("", nil)
	set := StaticRecommendationStructurer("", nil)

	assert.Equal(t, QuestionQuality(questions), QuestionQuality(questions))
	assert.Equal(t, AnalysisConfidence(analysis), AnalysisConfidence(analysis))
	assert.Equal(t, RecommendationQuality(set), RecommendationQuality(set))
}
