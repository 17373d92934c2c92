package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIChatClient implements ChatClient on the chat completions endpoint.
type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey, model string) *OpenAIChatClient {
	return newOpenAIChatClient(openai.DefaultConfig(apiKey), model)
}

func newOpenAIChatClient(cfg openai.ClientConfig, model string) *OpenAIChatClient {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIChatClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIChatClient) Provider() string {
	return "openai"
}

func (c *OpenAIChatClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
