package tutor

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// NewProvider creates a Provider from configuration, wrapped with
// retry and request logging.
func NewProvider(ctx context.Context, cfg Config, log *logrus.Entry) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return &MockProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown tutor provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller -> retry -> logging -> base
	return WithRetry(withLogging(base, log), cfg.Retry), nil
}
