package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds generation-service provider configuration.
type Config struct {
	// Provider selects the backend: "gemini", "anthropic", "openai", "mock".
	Provider string

	Gemini    GeminiConfig
	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Retry     RetryConfig
}

// GeminiConfig holds Gemini-specific configuration. Gemini is the default
// backend for PhysiTutor.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration. BaseURL supports
// OpenAI-compatible gateways.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from PHYSITUTOR_* environment variables,
// falling back to standard API key variables (GEMINI_API_KEY and friends)
// and then to defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("PHYSITUTOR_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	cfg.Gemini.APIKey = firstEnv("PHYSITUTOR_GEMINI_API_KEY", "GEMINI_API_KEY")
	if m := os.Getenv("PHYSITUTOR_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	cfg.Anthropic.APIKey = firstEnv("PHYSITUTOR_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	if m := os.Getenv("PHYSITUTOR_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	cfg.OpenAI.APIKey = firstEnv("PHYSITUTOR_OPENAI_API_KEY", "OPENAI_API_KEY")
	if m := os.Getenv("PHYSITUTOR_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("PHYSITUTOR_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	// When no provider was chosen explicitly, pick the first one with a key.
	if os.Getenv("PHYSITUTOR_LLM_PROVIDER") == "" {
		switch {
		case cfg.Gemini.APIKey != "":
			cfg.Provider = "gemini"
		case cfg.OpenAI.APIKey != "":
			cfg.Provider = "openai"
		case cfg.Anthropic.APIKey != "":
			cfg.Provider = "anthropic"
		}
	}

	return cfg
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
