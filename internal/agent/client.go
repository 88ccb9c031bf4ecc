// Package agent wraps the optional generative-text collaborator. The core
// risk and emergency logic never depends on it; it only enriches open-ended
// conversational replies and backs the last classification tier.
package agent

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the generative-text contract the orchestrator consumes. Both
// methods are best-effort: callers must keep a deterministic fallback.
type Client interface {
	ClassifyFreeText(ctx context.Context, text string) (string, error)
	Answer(ctx context.Context, prompt string) (string, error)
}

const classifySystemPrompt = `You classify maternal-health questions into exactly one category.
Reply with a single word from: emergency, medication, nutrition, risk, community_health, care, general.
No punctuation, no explanation.`

const answerSystemPrompt = `You are a maternal-health assistant for pregnant mothers in India.
Answer briefly and kindly in simple language. Never claim a diagnosis; frame everything as a
signal to discuss with an ASHA worker or doctor. If anything sounds urgent, say to call 108.`

// OpenAIClient calls the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient reads the API key and model from the environment.
// Returns nil when no key is configured so callers can wire the absence
// explicitly instead of carrying a client that always errors.
func NewOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{client: openai.NewClient(apiKey), model: model}
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("openai client not initialized")
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// ClassifyFreeText asks the model for a single category token.
func (c *OpenAIClient) ClassifyFreeText(ctx context.Context, text string) (string, error) {
	token, err := c.complete(ctx, classifySystemPrompt, text)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(token)), nil
}

// Answer generates a free-text reply for an open-ended question.
func (c *OpenAIClient) Answer(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, answerSystemPrompt, prompt)
}
