package llm

import "context"

// SystemInstruction frames the evaluator persona for every provider.
const SystemInstruction = "Você é um analista de qualidade de dados altamente especializado."

// Client is the interface the pipeline depends on. Implementations send
// the rendered prompt with the fixed system instruction and a token
// budget, and return the model's raw text stripped of the provider
// envelope. Provider errors are returned as-is: the pipeline surfaces
// them as inference failures and never retries.
type Client interface {
	Invoke(ctx context.Context, prompt string, maxTokens int) (string, error)
}
