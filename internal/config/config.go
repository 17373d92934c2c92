package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	Port     string
	LogLevel string

	LLMProvider  string
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string

	SessionStore string
	PostgresURL  string
	SessionTTL   time.Duration

	JWTSecret string
	TokenTTL  time.Duration

	WikipediaLanguage  string
	WikipediaUserAgent string
	WikipediaBaseURL   string
	LookupCacheTTL     time.Duration
}

// Load reads an optional .env file, then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LLM_PROVIDER", "openai")
	v.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("SESSION_STORE", StoreMemory)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("WIKIPEDIA_LANGUAGE", "en")
	v.SetDefault("WIKIPEDIA_USER_AGENT", "TravelItineraryApp/1.0")
	v.SetDefault("LOOKUP_CACHE_TTL", "1h")

	cfg := &Config{
		Port:               v.GetString("PORT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LLMProvider:        strings.ToLower(v.GetString("LLM_PROVIDER")),
		OpenAIAPIKey:       v.GetString("OPENAI_API_KEY"),
		OpenAIModel:        v.GetString("OPENAI_MODEL"),
		GeminiAPIKey:       v.GetString("GEMINI_API_KEY"),
		GeminiModel:        v.GetString("GEMINI_MODEL"),
		SessionStore:       strings.ToLower(v.GetString("SESSION_STORE")),
		PostgresURL:        v.GetString("POSTGRES_URL"),
		SessionTTL:         v.GetDuration("SESSION_TTL"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		TokenTTL:           v.GetDuration("TOKEN_TTL"),
		WikipediaLanguage:  v.GetString("WIKIPEDIA_LANGUAGE"),
		WikipediaUserAgent: v.GetString("WIKIPEDIA_USER_AGENT"),
		WikipediaBaseURL:   v.GetString("WIKIPEDIA_BASE_URL"),
		LookupCacheTTL:     v.GetDuration("LOOKUP_CACHE_TTL"),
	}

	return cfg, nil
}

// APIKey returns the key of the configured model provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// Model returns the model name of the configured provider.
func (c *Config) Model() string {
	if c.LLMProvider == "gemini" {
		return c.GeminiModel
	}
	return c.OpenAIModel
}

func (c *Config) Validate() error {
	switch c.LLMProvider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required when using Gemini provider")
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER: %s. Use 'openai' or 'gemini'", c.LLMProvider)
	}

	switch c.SessionStore {
	case StoreMemory:
	case StorePostgres:
		if c.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required when SESSION_STORE=postgres")
		}
	default:
		return fmt.Errorf("unsupported SESSION_STORE: %s", c.SessionStore)
	}

	if c.SessionTTL <= 0 || c.TokenTTL <= 0 || c.LookupCacheTTL <= 0 {
		return errors.New("SESSION_TTL, TOKEN_TTL and LOOKUP_CACHE_TTL must be positive durations")
	}
	return nil
}
