package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatClient_UnknownProvider(t *testing.T) {
	_, err := NewChatClient("llama", "key", "")
	assert.Error(t, err)
}

func TestNewChatClient_OpenAI(t *testing.T) {
	client, err := NewChatClient("OpenAI", "key", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", client.Provider())
}

func TestOpenAIChatClient_Complete(t *testing.T) {
	var received openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Day 1: Temple"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	cfg := openai.DefaultConfig("key")
	cfg.BaseURL = server.URL + "/v1"
	client := newOpenAIChatClient(cfg, "")

	reply, err := client.Complete(context.Background(), []ChatMessage{
		{Role: RoleAssistant, Content: "welcome"},
		{Role: RoleUser, Content: "Japan for 7 days"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Temple", reply)

	assert.Equal(t, openai.GPT3Dot5Turbo, received.Model)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleAssistant, received.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, received.Messages[1].Role)
}

func TestOpenAIChatClient_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	cfg := openai.DefaultConfig("key")
	cfg.BaseURL = server.URL + "/v1"

	_, err := newOpenAIChatClient(cfg, "gpt-4o-mini").Complete(context.Background(), []ChatMessage{{Role: RoleUser, Content: "hi"}})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestToGeminiHistory(t *testing.T) {
	system, history := toGeminiHistory([]ChatMessage{
		{Role: RoleAssistant, Content: "welcome"},
		{Role: RoleUser, Content: "Japan for 7 days"},
		{Role: RoleUser, Content: "Japan for 7 days, solo"},
		{Role: RoleAssistant, Content: "Day 1: Tokyo"},
		{Role: RoleUser, Content: "add 1 days"},
	})

	assert.Equal(t, "welcome", system)
	require.Len(t, history, 3)
	assert.Equal(t, RoleUser, history[0].Role)
	assert.Equal(t, []genai.Part{genai.Text("Japan for 7 days"), genai.Text("Japan for 7 days, solo")}, history[0].Parts)
	assert.Equal(t, "model", history[1].Role)
	assert.Equal(t, RoleUser, history[2].Role)
}

func TestToGeminiHistory_Empty(t *testing.T) {
	system, history := toGeminiHistory(nil)
	assert.Empty(t, system)
	assert.Empty(t, history)
}
