package llm

import "context"

// StageGenerator adapts a Client to the single-call generation contract the
// agent pipeline expects. Each stage sends its instruction set plus an
// assembled prompt and receives raw text; no retries, no default substitution.
type StageGenerator struct {
	client Client
	tier   ModelTier
}

// NewStageGenerator wraps a client at a fixed model tier
func NewStageGenerator(client Client, tier ModelTier) *StageGenerator {
	if tier == "" {
		tier = TierStandard
	}
	return &StageGenerator{client: client, tier: tier}
}

// Generate produces raw text for the given instructions and prompt
func (g *StageGenerator) Generate(ctx context.Context, instructions, prompt string) (string, error) {
	return g.client.GenerateContent(ctx, instructions, prompt, g.tier)
}
