package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-assistant/internal/agent"
)

func TestValidatePayload_StaticStructurerOutputs(t *testing.T) {
	// The deterministic placeholder payloads must satisfy their own schemas.
	assert.NoError(t, ValidatePayload(SchemaQuestions, agent.StaticQuestionStructurer("", nil)))
	assert.NoError(t, ValidatePayload(SchemaAnalysis, agent.StaticAnalysisStructurer("", nil)))
	assert.NoError(t, ValidatePayload(SchemaRecommendations, agent.StaticRecommendationStructurer("", nil)))
}

func TestValidateDocument_RejectsBadQuestionType(t *testing.T) {
	document := []byte(`[{
		"id": "q_0",
		"question_text": "Tell me about a project",
		"question_type": "RHETORICAL",
		"category": "SKILLS_ASSESSMENT"
	}]`)

	err := ValidateDocument(SchemaQuestions, document)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateDocument_RejectsScoreOutOfRange(t *testing.T) {
	document := []byte(`{
		"overall_assessment": {"summary": "fine"},
		"criterion_scores": {"technical_skills": 11.0},
		"detailed_feedback": {}
	}`)

	err := ValidateDocument(SchemaAnalysis, document)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateDocument_RejectsMissingRequired(t *testing.T) {
	document := []byte(`{"items": []}`)

	err := ValidateDocument(SchemaRecommendations, document)
	require.Error(t, err)
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("nonexistent.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
