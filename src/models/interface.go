package models

import "context"

// Params are the per-call generation settings forwarded to the provider.
type Params struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// Model is the narrow contract the session depends on: one instruction
// block in, one text block out. Transport failures surface as errors.
type Model interface {
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}
