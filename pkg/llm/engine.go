package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/soypete/rendevu/pkg/metrics"
)

// completeFunc sends one system/user exchange to a model and returns its text
type completeFunc func(ctx context.Context, system, user string) (string, error)

// engine implements the four Provider operations over a completeFunc, so every
// backend builds prompts and parses output the same way.
type engine struct {
	name     string
	model    string
	complete completeFunc
	logger   *zap.Logger
}

func (e *engine) Name() string { return e.name }

// Model returns the model identifier sent to the backend
func (e *engine) Model() string { return e.model }

func (e *engine) GenerateMeetingSummary(ctx context.Context, req *MeetingSummaryRequest) (*MeetingSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return generate[MeetingSummaryResponse](ctx, e, "summary", summaryPrompt(req))
}

func (e *engine) GenerateSchedulingSuggestion(ctx context.Context, req *SchedulingSuggestionRequest) (*SchedulingSuggestionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return generate[SchedulingSuggestionResponse](ctx, e, "scheduling", schedulingPrompt(req))
}

func (e *engine) GenerateEmail(ctx context.Context, req *EmailGenerationRequest) (*EmailGenerationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return generate[EmailGenerationResponse](ctx, e, "email", emailPrompt(req))
}

func (e *engine) GenerateMeetingBrief(ctx context.Context, req *MeetingBriefRequest) (*MeetingBriefResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return generate[MeetingBriefResponse](ctx, e, "brief", briefPrompt(req))
}

func generate[T any](ctx context.Context, e *engine, operation string, p prompt) (*T, error) {
	start := time.Now()

	text, err := e.complete(ctx, p.system, p.user)
	var out *T
	if err == nil {
		out, err = decodeJSON[T](text)
	}

	elapsed := time.Since(start)
	metrics.RecordLLMCall(e.name, operation, err, elapsed)
	if err != nil {
		e.logger.Warn("generation failed",
			zap.String("provider", e.name),
			zap.String("operation", operation),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s %s: %w", e.name, operation, err)
	}

	e.logger.Debug("generation complete",
		zap.String("provider", e.name),
		zap.String("operation", operation),
		zap.Duration("duration", elapsed),
	)
	return out, nil
}
