package llm

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ProviderType selects a generative backend
type ProviderType string

const (
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
)

// Config selects and configures a provider. Empty APIKey falls back to the
// backend's environment variable.
type Config struct {
	Provider ProviderType
	APIKey   string
	Model    string
	BaseURL  string
}

// NewProvider creates a provider from the configuration. An empty provider
// type selects Anthropic.
func NewProvider(cfg Config, logger *zap.Logger) (Provider, error) {
	switch cfg.Provider {
	case ProviderAnthropic, "":
		return NewAnthropicProvider(orDefault(cfg.APIKey, os.Getenv("ANTHROPIC_API_KEY")), cfg.Model, cfg.BaseURL, logger), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(orDefault(cfg.APIKey, os.Getenv("OPENAI_API_KEY")), cfg.Model, cfg.BaseURL, logger), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %s (supported: anthropic, openai)", cfg.Provider)
	}
}
