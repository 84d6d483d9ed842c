package tutor

import (
	"fmt"
	"os"
	"time"
)

// Config holds tutor provider configuration.
type Config struct {
	// Provider selects the backend: "anthropic", "openai", "gemini",
	// or "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional override for compatible APIs
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
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
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku-4-5-20251001",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from PSCPREP_* variables, falling back
// to probing the conventional API key variables when no provider is
// selected explicitly. Returns false if no provider can be configured.
func ConfigFromEnv() (Config, bool) {
	cfg := DefaultConfig()

	if p := os.Getenv("PSCPREP_TUTOR_PROVIDER"); p != "" {
		cfg.Provider = p
		cfg.Anthropic.APIKey = os.Getenv("PSCPREP_ANTHROPIC_API_KEY")
		cfg.OpenAI.APIKey = os.Getenv("PSCPREP_OPENAI_API_KEY")
		cfg.Gemini.APIKey = os.Getenv("PSCPREP_GEMINI_API_KEY")
		if m := os.Getenv("PSCPREP_TUTOR_MODEL"); m != "" {
			cfg.Anthropic.Model = m
			cfg.OpenAI.Model = m
			cfg.Gemini.Model = m
		}
		return cfg, true
	}

	// No explicit choice: take the first standard key found.
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("anthropic API key is required")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai API key is required")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("gemini API key is required")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown tutor provider: %q", c.Provider)
	}
	return nil
}
