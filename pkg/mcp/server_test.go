package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soypete/rendevu/pkg/tools"
)

// mockTool is a simple mock tool for testing
type mockTool struct {
	name        string
	description string
	result      *tools.Result
	executeErr  error
	gotArgs     map[string]interface{}
}

func (m *mockTool) Name() string        { return m.name }
func (m *mockTool) Description() string { return m.description }
func (m *mockTool) InputSchema() map[string]interface{} {
	return tools.Object(map[string]interface{}{
		"bookingUid": tools.NonEmptyString("Booking UID"),
	})
}

func (m *mockTool) Execute(ctx context.Context, args map[string]interface{}) (*tools.Result, error) {
	m.gotArgs = args
	if m.executeErr != nil {
		return nil, m.executeErr
	}
	return m.result, nil
}

func newTestServer(t *testing.T, ts ...tools.Tool) (*Server, *bytes.Buffer) {
	t.Helper()
	var stdout bytes.Buffer
	registry := tools.NewToolRegistry()
	for _, tool := range ts {
		require.NoError(t, registry.Register(tool))
	}
	server := NewServer("rendevu", "1.0.0", registry, WithIO(strings.NewReader(""), &stdout))
	return server, &stdout
}

func decodeResponse(t *testing.T, stdout *bytes.Buffer) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	return resp
}

func toolText(t *testing.T, resp Response) (string, bool) {
	t.Helper()
	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "result is not a map")
	content, ok := result["content"].([]interface{})
	require.True(t, ok, "content is not an array")
	require.Len(t, content, 1)
	first := content[0].(map[string]interface{})
	assert.Equal(t, "text", first["type"])
	return first["text"].(string), result["isError"].(bool)
}

func TestHandleInitialize(t *testing.T) {
	server, stdout := newTestServer(t)

	server.handleRequest(context.Background(), &Request{JSONRPC: "2.0", ID: 1, Method: "initialize"})

	resp := decodeResponse(t, stdout)
	assert.Equal(t, "2.0", resp.JSONRPC)
	assert.Equal(t, 1.0, resp.ID)
	assert.Nil(t, resp.Error)

	result := resp.Result.(map[string]interface{})
	assert.Equal(t, ProtocolVersion, result["protocolVersion"])
	serverInfo := result["serverInfo"].(map[string]interface{})
	assert.Equal(t, "rendevu", serverInfo["name"])
	assert.Equal(t, "1.0.0", serverInfo["version"])
}

func TestHandleToolsList(t *testing.T) {
	server, stdout := newTestServer(t,
		&mockTool{name: "list_schedules", description: "Schedules"},
		&mockTool{name: "get_booking", description: "Booking"},
	)

	server.handleRequest(context.Background(), &Request{JSONRPC: "2.0", ID: 2, Method: "tools/list"})

	resp := decodeResponse(t, stdout)
	require.Nil(t, resp.Error)
	list := resp.Result.(map[string]interface{})["tools"].([]interface{})
	require.Len(t, list, 2)

	first := list[0].(map[string]interface{})
	assert.Equal(t, "get_booking", first["name"])
	assert.Equal(t, "Booking", first["description"])
	schema := first["inputSchema"].(map[string]interface{})
	assert.Equal(t, "object", schema["type"])
}

func TestHandleToolCallSuccess(t *testing.T) {
	tool := &mockTool{
		name:   "get_booking",
		result: tools.TextResult(`{"uid": "abc"}`),
	}
	server, stdout := newTestServer(t, tool)

	server.handleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      3,
		Method:  "tools/call",
		Params: map[string]interface{}{
			"name":      "get_booking",
			"arguments": map[string]interface{}{"bookingUid": "abc"},
		},
	})

	text, isError := toolText(t, decodeResponse(t, stdout))
	assert.False(t, isError)
	assert.Equal(t, `{"uid": "abc"}`, text)
	assert.Equal(t, "abc", tool.gotArgs["bookingUid"])
}

func TestHandleToolCallUpstreamFailure(t *testing.T) {
	server, stdout := newTestServer(t, &mockTool{
		name:   "get_booking",
		result: tools.ErrorResult("Booking not found"),
	})

	server.handleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      4,
		Method:  "tools/call",
		Params:  map[string]interface{}{"name": "get_booking", "arguments": map[string]interface{}{}},
	})

	text, isError := toolText(t, decodeResponse(t, stdout))
	assert.True(t, isError)
	assert.Equal(t, "Error: Booking not found", text)
}

func TestHandleToolCallValidationError(t *testing.T) {
	server, stdout := newTestServer(t, &mockTool{
		name:       "get_booking",
		executeErr: &tools.ValidationError{Tool: "get_booking", Problems: []string{"bookingUid: String length must be greater than or equal to 1"}},
	})

	server.handleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      5,
		Method:  "tools/call",
		Params:  map[string]interface{}{"name": "get_booking", "arguments": map[string]interface{}{"bookingUid": ""}},
	})

	resp := decodeResponse(t, stdout)
	assert.Nil(t, resp.Error)
	text, isError := toolText(t, resp)
	assert.True(t, isError)
	assert.True(t, strings.HasPrefix(text, "Error: invalid arguments for get_booking"))
}

func TestHandleToolCallExecuteError(t *testing.T) {
	server, stdout := newTestServer(t, &mockTool{name: "boom", executeErr: errors.New("kaput")})

	server.handleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      6,
		Method:  "tools/call",
		Params:  map[string]interface{}{"name": "boom"},
	})

	text, isError := toolText(t, decodeResponse(t, stdout))
	assert.True(t, isError)
	assert.Equal(t, "Error: kaput", text)
}

func TestHandleToolCallUnknownTool(t *testing.T) {
	server, stdout := newTestServer(t)

	server.handleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      7,
		Method:  "tools/call",
		Params:  map[string]interface{}{"name": "nonexistent", "arguments": map[string]interface{}{}},
	})

	text, isError := toolText(t, decodeResponse(t, stdout))
	assert.True(t, isError)
	assert.Equal(t, "Error: Unknown tool: nonexistent", text)
}

func TestHandleToolCallMissingArgumentsDefaultsToEmpty(t *testing.T) {
	tool := &mockTool{name: "list_schedules", result: tools.TextResult("[]")}
	server, stdout := newTestServer(t, tool)

	server.handleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      8,
		Method:  "tools/call",
		Params:  map[string]interface{}{"name": "list_schedules"},
	})

	text, isError := toolText(t, decodeResponse(t, stdout))
	assert.False(t, isError)
	assert.Equal(t, "[]", text)
	assert.NotNil(t, tool.gotArgs)
	assert.Empty(t, tool.gotArgs)
}

func TestHandleToolCallInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"arguments": map[string]interface{}{}}},
		{"arguments not an object", map[string]interface{}{"name": "x", "arguments": "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, stdout := newTestServer(t)
			server.handleRequest(context.Background(), &Request{JSONRPC: "2.0", ID: 9, Method: "tools/call", Params: tt.params})

			resp := decodeResponse(t, stdout)
			require.NotNil(t, resp.Error)
			assert.Equal(t, CodeInvalidParams, resp.Error.Code)
		})
	}
}

func TestHandleUnknownMethod(t *testing.T) {
	server, stdout := newTestServer(t)

	server.handleRequest(context.Background(), &Request{JSONRPC: "2.0", ID: 10, Method: "unknown/method"})

	resp := decodeResponse(t, stdout)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeMethodNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Method not found")
}

func TestNotificationsGetNoResponse(t *testing.T) {
	server, stdout := newTestServer(t)

	server.handleRequest(context.Background(), &Request{JSONRPC: "2.0", Method: "notifications/initialized"})

	assert.Zero(t, stdout.Len())
}

func TestRunSession(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`invalid json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"echo","arguments":{}}}`,
	}, "\n") + "\n"

	var stdout bytes.Buffer
	registry := tools.NewToolRegistry()
	require.NoError(t, registry.Register(&mockTool{name: "echo", result: tools.TextResult("hi")}))
	server := NewServer("rendevu", "1.0.0", registry, WithIO(strings.NewReader(input), &stdout))

	require.NoError(t, server.Run(context.Background()))

	var responses []Response
	scanner := bufio.NewScanner(&stdout)
	for scanner.Scan() {
		var resp Response
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	require.Len(t, responses, 4)

	assert.Equal(t, 1.0, responses[0].ID)
	assert.Nil(t, responses[1].ID)
	require.NotNil(t, responses[1].Error)
	assert.Equal(t, CodeParseError, responses[1].Error.Code)
	assert.Equal(t, 2.0, responses[2].ID)
	assert.Nil(t, responses[2].Error)
	assert.Equal(t, 3.0, responses[3].ID)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	var stdout bytes.Buffer
	server := NewServer("rendevu", "1.0.0", nil, WithIO(strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n"), &stdout))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := server.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stdout.Len())
}

func TestRunReturnsWhenCancelledWhileIdle(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var stdout bytes.Buffer
	server := NewServer("rendevu", "1.0.0", nil, WithIO(pr, &stdout))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel while stdin was idle")
	}
	assert.Zero(t, stdout.Len())
}

func TestRunAnswersThenStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	out := newSyncBuffer()
	server := NewServer("rendevu", "1.0.0", nil, WithIO(pr, out))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	_, err := io.WriteString(pw, `{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return strings.Contains(out.String(), `"id":1`) }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestHandleInvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "wrong version", req: &Request{JSONRPC: "1.0", ID: 5, Method: "ping"}},
		{name: "missing version", req: &Request{ID: 5, Method: "ping"}},
		{name: "missing method", req: &Request{JSONRPC: "2.0", ID: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, stdout := newTestServer(t)

			server.handleRequest(context.Background(), tt.req)

			resp := decodeResponse(t, stdout)
			assert.Equal(t, 5.0, resp.ID)
			require.NotNil(t, resp.Error)
			assert.Equal(t, CodeInvalidRequest, resp.Error.Code)
			assert.Equal(t, "Invalid Request", resp.Error.Message)
		})
	}
}

func TestHandleToolCallNilResult(t *testing.T) {
	server, stdout := newTestServer(t, &mockTool{name: "empty"})

	server.handleRequest(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      11,
		Method:  "tools/call",
		Params:  map[string]interface{}{"name": "empty", "arguments": map[string]interface{}{}},
	})

	resp := decodeResponse(t, stdout)
	assert.Equal(t, 11.0, resp.ID)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInternalError, resp.Error.Code)
	assert.Nil(t, resp.Result)
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func newSyncBuffer() *syncBuffer { return &syncBuffer{} }

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
