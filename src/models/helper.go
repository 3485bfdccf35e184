package models

import (
	"context"
	"fmt"
)

// NewProvider returns a concrete Model for the named provider. Missing
// credentials surface as construction errors so callers can prompt for them
// before any network activity.
func NewProvider(ctx context.Context, provider string, model string) (Model, error) {
	switch provider {
	case "openai":
		return NewOpenAILLM(model)
	case "gemini", "google":
		return NewGeminiLLM(ctx, model)
	case "ollama":
		return NewOllamaLLM(model)
	case "anthropic", "claude":
		return NewAnthropicLLM(model)
	case "dummy":
		return NewDummyLLM(""), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
