package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"resume-matcher/internal/config"
)

// CompletionClient issues one chat-completion exchange with a remote
// language model and returns the raw text of its reply. Failures are
// reported as *CompletionError; no retries are attempted.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

const (
	completionTemperature = 0.2
	completionMaxTokens   = 900
	maxErrorBodyBytes     = 400
)

type openRouterClient struct {
	cfg    config.OpenRouterConfig
	client *http.Client
}

// NewOpenRouterClient builds the default completion backend: a thin
// wrapper over the OpenRouter chat-completions endpoint. The credential
// comes from config, resolved once at process start.
func NewOpenRouterClient(cfg config.OpenRouterConfig) CompletionClient {
	return &openRouterClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *openRouterClient) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: o.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &CompletionError{Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	url := o.cfg.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", &CompletionError{Err: fmt.Errorf("failed to build request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)
	// Optional attribution headers for OpenRouter analytics
	if o.cfg.AppURL != "" {
		req.Header.Set("HTTP-Referer", o.cfg.AppURL)
	}
	if o.cfg.AppTitle != "" {
		req.Header.Set("X-Title", o.cfg.AppTitle)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return "", &CompletionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &CompletionError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &CompletionError{
			StatusCode: resp.StatusCode,
			Body:       truncateBody(body),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &CompletionError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(parsed.Choices) == 0 {
		return "", &CompletionError{Err: fmt.Errorf("no response choices received")}
	}

	return parsed.Choices[0].Message.Content, nil
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}
	return string(body)
}
