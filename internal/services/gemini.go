package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds the alternative completion backend on the
// Gemini API, selected with LLM_PROVIDER=gemini.
func NewGeminiClient(apiKey, model string) (CompletionClient, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client: client,
		model:  model,
	}, nil
}

func (g *geminiClient) Complete(ctx context.Context, system, user string) (string, error) {
	temperature := float32(completionTemperature)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: completionMaxTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), cfg)
	if err != nil {
		return "", &CompletionError{Err: fmt.Errorf("failed to generate text: %w", err)}
	}

	if resp == nil {
		return "", &CompletionError{Err: fmt.Errorf("no response generated (nil response)")}
	}

	text := resp.Text()
	if text == "" {
		return "", &CompletionError{Err: fmt.Errorf("no text content in response")}
	}

	return text, nil
}
