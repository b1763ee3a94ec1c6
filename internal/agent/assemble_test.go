package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-assistant/internal/types"
)

func TestFormatQAPairs_NumberKeyedResponses(t *testing.T) {
	questions := []types.GeneratedQuestion{
		{Text: "Tell me about a recent project", Type: types.QuestionBehavioral},
		{Text: "How do you handle conflict?", Type: types.QuestionSituational},
	}
	responses := map[string]string{
		"1": "I led the billing migration",
		"2": "I start with a private conversation",
	}

	text := FormatQAPairs(questions, responses)

	assert.Contains(t, text, "Q1: Tell me about a recent project\n")
	assert.Contains(t, text, "Response: I led the billing migration\n")
	assert.Contains(t, text, "Q2: How do you handle conflict?\n")
	assert.Contains(t, text, "Response: I start with a private conversation\n")
	assert.Contains(t, text, "Question Type: BEHAVIORAL\n")
	assert.Contains(t, text, "Question Type: SITUATIONAL\n")
}

func TestFormatQAPairs_TextKeyedFallback(t *testing.T) {
	questions := []types.GeneratedQuestion{
		{Text: "Describe your leadership style", Type: types.QuestionBehavioral},
	}
	responses := map[string]string{
		"Describe your leadership style": "Collaborative, with clear ownership",
	}

	text := FormatQAPairs(questions, responses)

	assert.Contains(t, text, "Response: Collaborative, with clear ownership\n")
}

func TestFormatQAPairs_MissingResponse(t *testing.T) {
	questions := []types.GeneratedQuestion{
		{Text: "Any questions for us?", Type: types.QuestionBehavioral},
	}

	text := FormatQAPairs(questions, map[string]string{})

	assert.Contains(t, text, "Response: No response\n")
}

func TestFormatQAPairs_DegradedQuestion(t *testing.T) {
	questions := []types.GeneratedQuestion{{}}

	text := FormatQAPairs(questions, nil)

	assert.Contains(t, text, "Q1: Question 1\n")
	assert.Contains(t, text, "Question Type: Unknown\n")
}

func TestFormatQAPairs_Empty(t *testing.T) {
	assert.Equal(t, "", FormatQAPairs(nil, nil))
}

func TestFormatBenchmarks(t *testing.T) {
	text := formatBenchmarks(types.DepartmentBenchmarks{AverageScore: 7.0, TopQuartile: 8.5})

	assert.Equal(t, "DEPARTMENT BENCHMARKS:\nAverage Score: 7.0\nTop Quartile: 8.5\n", text)
}

func TestFormatScores_OrderedByCriteria(t *testing.T) {
	scores := map[types.EvaluationCriteria]float64{
		types.CriteriaCommunication:   9.0,
		types.CriteriaTechnicalSkills: 8.5,
	}

	text := formatScores(scores)

	assert.Equal(t, "- technical_skills: 8.5/10\n- communication: 9.0/10\n", text)
}
