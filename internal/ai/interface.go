package ai

import (
	"context"
)

// Answerer is the contract for the generative answer service.
// It allows swapping providers (Gemini, OpenAI, ...) and wrapping with caching.
type Answerer interface {
	// Ask sends a prompt and returns the model's free-text reply.
	Ask(ctx context.Context, prompt string) (string, error)
}
