package ai

import "context"

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Embedder turns text into a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

type ChatRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Completer returns the raw text of a single chat completion.
type Completer interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}
