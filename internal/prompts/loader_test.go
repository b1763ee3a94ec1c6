package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("agents.json", "question_generator")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "HR Question Generator")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("agents.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_AllAgentKinds(t *testing.T) {
	ClearCache()

	for _, key := range []string{"question_generator", "response_analyzer", "decision_support"} {
		assert.NotPanics(t, func() {
			prompt := MustGet("agents.json", key)
			assert.NotEmpty(t, prompt)
		})
	}
}

func TestFormat(t *testing.T) {
	result := Format("Interview for {{.Name}} in {{.Department}}", map[string]string{
		"Name":       "Alice",
		"Department": "engineering",
	})
	assert.Equal(t, "Interview for Alice in engineering", result)
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("agents.json")
	require.NoError(t, err)
	assert.Len(t, keys, 3)
	assert.Contains(t, keys, "response_analyzer")
}
