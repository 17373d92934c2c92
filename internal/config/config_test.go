package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Model())
	assert.Equal(t, "sk-test", cfg.APIKey())
	assert.Equal(t, StoreMemory, cfg.SessionStore)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, time.Hour, cfg.LookupCacheTTL)
	assert.Equal(t, "en", cfg.WikipediaLanguage)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LLM_PROVIDER=Gemini\nGEMINI_API_KEY=g-key\nSESSION_TTL=30m\n"), 0o600))
	// godotenv never overrides variables already set, so start from a clean slate
	for _, key := range []string{"LLM_PROVIDER", "GEMINI_API_KEY", "SESSION_TTL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, "g-key", cfg.APIKey())
	assert.Equal(t, "gemini-1.5-flash", cfg.Model())
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LLMProvider:    "openai",
			OpenAIAPIKey:   "sk-test",
			SessionStore:   StoreMemory,
			SessionTTL:     time.Hour,
			TokenTTL:       time.Hour,
			LookupCacheTTL: time.Hour,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing openai key", func(c *Config) { c.OpenAIAPIKey = "" }},
		{"missing gemini key", func(c *Config) { c.LLMProvider = "gemini" }},
		{"unknown provider", func(c *Config) { c.LLMProvider = "llama" }},
		{"unknown store", func(c *Config) { c.SessionStore = "redis" }},
		{"postgres without url", func(c *Config) { c.SessionStore = StorePostgres }},
		{"zero ttl", func(c *Config) { c.TokenTTL = 0 }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
