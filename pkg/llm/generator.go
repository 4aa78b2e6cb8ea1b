package llm

import "context"

// Generator is the capability interface for the external text-generation
// provider. Implementations send a system prompt and a user prompt and
// return the generated text verbatim.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
