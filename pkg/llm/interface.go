package llm

import (
	"context"
	"errors"
)

// Provider generates structured scheduling text from a generative model.
// Every operation makes exactly one model call.
type Provider interface {
	// Name identifies the backend ("anthropic", "openai")
	Name() string

	GenerateMeetingSummary(ctx context.Context, req *MeetingSummaryRequest) (*MeetingSummaryResponse, error)
	GenerateSchedulingSuggestion(ctx context.Context, req *SchedulingSuggestionRequest) (*SchedulingSuggestionResponse, error)
	GenerateEmail(ctx context.Context, req *EmailGenerationRequest) (*EmailGenerationResponse, error)
	GenerateMeetingBrief(ctx context.Context, req *MeetingBriefRequest) (*MeetingBriefResponse, error)
}

var (
	// ErrNoUsableOutput means the model returned no text content
	ErrNoUsableOutput = errors.New("no usable output from model")

	// ErrNoJSONFound means the model text contained no JSON object
	ErrNoJSONFound = errors.New("no JSON found in response")
)

// ValidationError reports a request missing required fields
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
