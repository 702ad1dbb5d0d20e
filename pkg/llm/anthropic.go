package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"
)

const (
	// DefaultAnthropicModel is used when no model is configured
	DefaultAnthropicModel = "claude-sonnet-4-20250514"

	maxOutputTokens = 4096
)

// AnthropicProvider generates text with the Anthropic Messages API
type AnthropicProvider struct {
	*engine
	client anthropic.Client
}

// NewAnthropicProvider creates a provider. An empty model selects
// DefaultAnthropicModel; an empty baseURL uses the SDK default.
func NewAnthropicProvider(apiKey, model, baseURL string, logger *zap.Logger) *AnthropicProvider {
	if model == "" {
		model = DefaultAnthropicModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	p := &AnthropicProvider{client: anthropic.NewClient(opts...)}
	p.engine = &engine{
		name:     string(ProviderAnthropic),
		model:    model,
		complete: p.chat,
		logger:   logger,
	}
	return p
}

func (p *AnthropicProvider) chat(ctx context.Context, system, user string) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: maxOutputTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	if len(msg.Content) == 0 || msg.Content[0].Type != "text" || msg.Content[0].Text == "" {
		return "", ErrNoUsableOutput
	}
	return msg.Content[0].Text, nil
}
