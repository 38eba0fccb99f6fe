package llm

import (
	"context"
)

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Generate sends a single prompt to the model and returns the response
	Generate(ctx context.Context, prompt string) (string, error)
}
