package llm

import "context"

// Summarizer is one chat-style completion call: a fixed system instruction
// plus user content, returning the model's analysis text.
type Summarizer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	ModelName() string
}
