package models

import (
	"context"
	"errors"
	"os"

	"github.com/sashabaranov/go-openai"
)

type OpenAILLM struct {
	Client *openai.Client
	Model  string
}

// NewOpenAILLM constructs a client. It reads OPENAI_API_KEY from the env.
func NewOpenAILLM(model string) (*OpenAILLM, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_KEY") // fallback
	}
	if apiKey == "" {
		return nil, errors.New("missing OPENAI_API_KEY")
	}
	return &OpenAILLM{Client: openai.NewClient(apiKey), Model: model}, nil
}

func (o *OpenAILLM) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.Model,
		Temperature: float32(params.Temperature),
		MaxTokens:   params.MaxTokens,
		TopP:        float32(params.TopP),
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ Model = (*OpenAILLM)(nil)
