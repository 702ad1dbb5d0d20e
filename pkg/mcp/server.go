package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/soypete/rendevu/pkg/tools"
)

// ProtocolVersion is the MCP revision this server speaks
const ProtocolVersion = "2024-11-05"

// JSON-RPC error codes
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// maxLineSize bounds a single request frame
const maxLineSize = 4 * 1024 * 1024

// Server implements the MCP server protocol over line-delimited stdio
type Server struct {
	name     string
	version  string
	registry *tools.ToolRegistry
	stdin    io.Reader
	stdout   io.Writer
	logger   *zap.Logger
	mu       sync.Mutex
}

// Request represents an MCP request
type Request struct {
	JSONRPC string                 `json:"jsonrpc"`
	ID      interface{}            `json:"id,omitempty"`
	Method  string                 `json:"method"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// Response represents an MCP response
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents an MCP error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Option customizes a Server
type Option func(*Server)

// WithIO replaces stdin/stdout
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Server) {
		s.stdin = in
		s.stdout = out
	}
}

// WithLogger sets the server logger. It must not write to stdout.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP server serving the tools of registry
func NewServer(name, version string, registry *tools.ToolRegistry, opts ...Option) *Server {
	if registry == nil {
		registry = tools.NewToolRegistry()
	}
	s := &Server{
		name:     name,
		version:  version,
		registry: registry,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run starts the MCP server loop (stdio transport). It returns when stdin is
// exhausted or ctx is cancelled, even while a read is still pending.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server started",
		zap.String("name", s.name),
		zap.Strings("tools", s.registry.ListNames()),
	)

	lines := make(chan []byte)
	errc := make(chan error, 1)
	go s.scan(ctx, lines, errc)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var line []byte
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("scanner error: %w", err)
				}
				return nil
			}
			line = l
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("unparseable request", zap.Error(err))
			s.sendError(nil, CodeParseError, "Parse error")
			continue
		}

		s.handleRequest(ctx, &req)
	}
}

// scan feeds stdin lines to the Run loop. A blocked read outlives a cancelled
// Run; the goroutine exits once the read returns.
func (s *Server) scan(ctx context.Context, lines chan<- []byte, errc chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(s.stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		select {
		case lines <- line:
		case <-ctx.Done():
			errc <- nil
			return
		}
	}
	errc <- scanner.Err()
}

// handleRequest handles an MCP request
func (s *Server) handleRequest(ctx context.Context, req *Request) {
	if req.JSONRPC != "2.0" || req.Method == "" {
		s.sendError(req.ID, CodeInvalidRequest, "Invalid Request")
		return
	}
	if strings.HasPrefix(req.Method, "notifications/") {
		s.logger.Debug("notification", zap.String("method", req.Method))
		return
	}

	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "ping":
		s.sendResponse(req.ID, map[string]interface{}{})
	case "tools/list":
		s.handleToolsList(req)
	case "tools/call":
		s.handleToolCall(ctx, req)
	default:
		s.sendError(req.ID, CodeMethodNotFound, "Method not found")
	}
}

// handleInitialize handles the initialize request
func (s *Server) handleInitialize(req *Request) {
	result := map[string]interface{}{
		"protocolVersion": ProtocolVersion,
		"serverInfo": map[string]interface{}{
			"name":    s.name,
			"version": s.version,
		},
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
	}

	s.sendResponse(req.ID, result)
}

// handleToolsList handles the tools/list request
func (s *Server) handleToolsList(req *Request) {
	list := s.registry.List()
	toolsList := make([]map[string]interface{}, 0, len(list))

	for _, tool := range list {
		toolsList = append(toolsList, map[string]interface{}{
			"name":        tool.Name(),
			"description": tool.Description(),
			"inputSchema": tool.InputSchema(),
		})
	}

	s.sendResponse(req.ID, map[string]interface{}{
		"tools": toolsList,
	})
}

// handleToolCall handles the tools/call request. Every failure after the tool
// name is known is reported as error content, not as a JSON-RPC error.
func (s *Server) handleToolCall(ctx context.Context, req *Request) {
	name, ok := req.Params["name"].(string)
	if !ok || name == "" {
		s.sendError(req.ID, CodeInvalidParams, "Invalid params: missing 'name'")
		return
	}

	args := map[string]interface{}{}
	if raw, present := req.Params["arguments"]; present && raw != nil {
		args, ok = raw.(map[string]interface{})
		if !ok {
			s.sendError(req.ID, CodeInvalidParams, "Invalid params: 'arguments' must be an object")
			return
		}
	}

	tool, ok := s.registry.Get(name)
	if !ok {
		s.sendToolResult(req.ID, "Error: Unknown tool: "+name, true)
		return
	}

	result, err := tool.Execute(ctx, args)
	if err != nil {
		var verr *tools.ValidationError
		if errors.As(err, &verr) {
			s.logger.Debug("tool arguments rejected", zap.String("tool", name), zap.Error(err))
		} else {
			s.logger.Error("tool execution failed", zap.String("tool", name), zap.Error(err))
		}
		s.sendToolResult(req.ID, "Error: "+err.Error(), true)
		return
	}

	if result == nil {
		s.logger.Error("tool returned no result", zap.String("tool", name))
		s.sendError(req.ID, CodeInternalError, "Internal error: tool returned no result")
		return
	}

	s.logger.Debug("tool executed", zap.String("tool", name), zap.Bool("success", result.Success))
	s.sendToolResult(req.ID, result.Output, !result.Success)
}

func (s *Server) sendToolResult(id interface{}, text string, isError bool) {
	s.sendResponse(id, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": text,
			},
		},
		"isError": isError,
	})
}

// sendResponse sends a success response
func (s *Server) sendResponse(id interface{}, result interface{}) {
	s.write(Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

// sendError sends an error response
func (s *Server) sendError(id interface{}, code int, message string) {
	s.write(Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func (s *Server) write(resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.stdout, string(data)); err != nil {
		s.logger.Error("failed to write response", zap.Error(err))
	}
}
