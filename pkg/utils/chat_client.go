package utils

import (
	"context"
	"fmt"
	"strings"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry of a conversation sent to a chat model.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClient sends the whole conversation and returns the model's reply text.
type ChatClient interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
	Provider() string
}

// NewChatClient Factory function to create either an OpenAI or a Gemini chat client
func NewChatClient(provider, apiKey, model string) (ChatClient, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIChatClient(apiKey, model), nil
	case "gemini":
		return NewGeminiChatClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
