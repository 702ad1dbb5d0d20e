package tools

import (
	"context"
	"encoding/json"
)

// Tool represents an executable tool
type Tool interface {
	// Name returns the tool name
	Name() string

	// Description returns the tool description
	Description() string

	// InputSchema returns the JSON Schema the arguments must satisfy
	InputSchema() map[string]interface{}

	// Execute executes the tool with given arguments. Argument validation
	// failures are returned as a *ValidationError; upstream failures are
	// reported through an unsuccessful Result.
	Execute(ctx context.Context, args map[string]interface{}) (*Result, error)
}

// Result represents a tool execution result
type Result struct {
	Success bool        `json:"success"`
	Output  string      `json:"output"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResult creates an error result with the given message
func ErrorResult(msg string) *Result {
	return &Result{
		Success: false,
		Error:   msg,
		Output:  "Error: " + msg,
	}
}

// TextResult creates a successful result with plain text output
func TextResult(output string) *Result {
	return &Result{
		Success: true,
		Output:  output,
	}
}

// JSONResult creates a successful result whose output is the indented JSON of data
func JSONResult(data interface{}) *Result {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ErrorResult("failed to encode result: " + err.Error())
	}
	return &Result{
		Success: true,
		Output:  string(out),
		Data:    data,
	}
}
