package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGeminiConfig(t *testing.T) {
	config := DefaultGeminiConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestGetModel_FallbackChain(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierStandard: "gemini-2.5-flash",
		},
	}

	// Unknown tier falls back to standard
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierAdvanced))

	config = &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "gemini-2.5-flash-lite",
		},
	}

	// No standard model falls back to lite
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierAdvanced))

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}

func TestWithModel(t *testing.T) {
	config := DefaultGeminiConfig()
	custom := config.WithModel(TierAdvanced, "gemini-exp")

	assert.Equal(t, "gemini-exp", custom.GetModel(TierAdvanced))
	// Original config is unchanged
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
	// Other tiers carry over
	assert.Equal(t, "gemini-2.5-flash", custom.GetModel(TierStandard))
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultGeminiConfig(), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
