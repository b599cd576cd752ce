package openai

import (
	"context"
	"fmt"

	"github.com/inflink/inflink-escrow-service/internal/domain"
	openai "github.com/sashabaranov/go-openai"
)

const fallbackReply = "I'm not sure how to respond to that."

type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
}

// ChatClient implements domain.ChatCompleter on top of the OpenAI chat
// completions API.
type ChatClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewChatClient(cfg Config) *ChatClient {
	var client *openai.Client
	if cfg.APIKey != "" {
		client = openai.NewClient(cfg.APIKey)
	}
	return &ChatClient{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Complete sends the conversation upstream. A missing API key fails
// fast without a network call so callers can tell a configuration
// problem from a retryable one.
func (c *ChatClient) Complete(ctx context.Context, conversation []domain.ChatMessage) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("%w: OPENAI_API_KEY is not set", domain.ErrUpstreamConfig)
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(conversation))
	for _, m := range conversation {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamTransient, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return fallbackReply, nil
	}
	return resp.Choices[0].Message.Content, nil
}
