package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiRoleModel = "model"

// GeminiChatClient implements ChatClient using Google's Gemini models
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

// NewGeminiChatClient creates a new Gemini client
func NewGeminiChatClient(apiKey, model string) (*GeminiChatClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiChatClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiChatClient) Provider() string {
	return "gemini"
}

// Complete replays the history into a chat session and sends the last message.
func (c *GeminiChatClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("gemini: %w", ErrInvalidInput)
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)

	system, history := toGeminiHistory(messages[:len(messages)-1])
	if system != "" {
		m.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}

	parts := []genai.Part{genai.Text(messages[len(messages)-1].Content)}
	if n := len(history); n > 0 && history[n-1].Role == RoleUser {
		parts = append(history[n-1].Parts, parts...)
		history = history[:n-1]
	}

	cs := m.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return out.String(), nil
}

// Close closes the Gemini client
func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}

// toGeminiHistory lifts leading assistant messages into a system
// instruction (Gemini histories start with a user turn) and merges
// consecutive messages of the same role into one content block.
func toGeminiHistory(messages []ChatMessage) (string, []*genai.Content) {
	var system []string
	i := 0
	for ; i < len(messages) && messages[i].Role == RoleAssistant; i++ {
		system = append(system, messages[i].Content)
	}

	var history []*genai.Content
	for _, msg := range messages[i:] {
		role := RoleUser
		if msg.Role == RoleAssistant {
			role = geminiRoleModel
		}
		if n := len(history); n > 0 && history[n-1].Role == role {
			history[n-1].Parts = append(history[n-1].Parts, genai.Text(msg.Content))
			continue
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return strings.Join(system, "\n\n"), history
}
