package calcom

import (
	"encoding/json"
	"fmt"
)

// Status values used by the Cal.com v2 response envelope
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes produced locally by the client. Upstream codes are passed through untouched.
const (
	CodeTimeout         = "TIMEOUT"
	CodeNetworkError    = "NETWORK_ERROR"
	CodeParseError      = "PARSE_ERROR"
	CodeInvalidResponse = "INVALID_RESPONSE"
	CodeUnknown         = "UNKNOWN_ERROR"
)

// APIError is the error half of the envelope
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Response is the result of one upstream call. Either Data is set and Status is
// "success", or Error is set and Status is "error".
//
// Raw holds the upstream data member exactly as received. Data is a typed view
// of it and is filled on a best-effort basis: fields Cal.com returns with a
// different shape are left zero instead of failing the call.
type Response[T any] struct {
	Status string          `json:"status"`
	Data   T               `json:"data,omitempty"`
	Error  *APIError       `json:"error,omitempty"`
	Raw    json.RawMessage `json:"-"`
}

// Ok builds a success envelope
func Ok[T any](data T) *Response[T] {
	return &Response[T]{Status: StatusSuccess, Data: data}
}

// Fail builds an error envelope. An empty code becomes CodeUnknown.
func Fail[T any](code, message string) *Response[T] {
	if code == "" {
		code = CodeUnknown
	}
	return &Response[T]{
		Status: StatusError,
		Error:  &APIError{Message: message, Code: code},
	}
}

// Success reports whether the envelope holds data
func (r *Response[T]) Success() bool {
	return r != nil && r.Status != StatusError && r.Error == nil
}

// Err returns the error half, or nil on success
func (r *Response[T]) Err() *APIError {
	if r == nil {
		return &APIError{Message: "no response", Code: CodeUnknown}
	}
	if r.Success() {
		return nil
	}
	if r.Error == nil {
		return &APIError{Message: "Unknown error occurred", Code: CodeUnknown}
	}
	return r.Error
}

// normalize makes sure an error envelope always carries a code and message.
func (r *Response[T]) normalize() *Response[T] {
	if r.Status != StatusError {
		return r
	}
	if r.Error == nil {
		r.Error = &APIError{}
	}
	if r.Error.Code == "" {
		r.Error.Code = CodeUnknown
	}
	if r.Error.Message == "" {
		r.Error.Message = "Unknown error occurred"
	}
	return r
}
