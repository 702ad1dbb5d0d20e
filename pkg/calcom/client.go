package calcom

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/soypete/rendevu/pkg/metrics"
)

const (
	// DefaultBaseURL is the Cal.com API v2 base URL
	DefaultBaseURL = "https://api.cal.com/v2"

	// DefaultAPIVersion is sent in the cal-api-version header
	DefaultAPIVersion = "2024-06-11"

	// DefaultTimeout bounds a single upstream call
	DefaultTimeout = 30 * time.Second
)

// Config holds the connection settings for the Cal.com API
type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient sets the base HTTP client. Its transport is wrapped with bearer auth.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.base = hc
	}
}

// WithLogger sets the logger used for per-call debug output
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client handles HTTP communication with the Cal.com API. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	apiVersion string
	timeout    time.Duration
	base       *http.Client
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Cal.com API client
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiVersion: cfg.APIVersion,
		timeout:    cfg.Timeout,
		base:       http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	baseTransport := c.base.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.httpClient = &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey}),
			Base:   baseTransport,
		},
		CheckRedirect: c.base.CheckRedirect,
		Jar:           c.base.Jar,
	}

	return c
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call performs one request and maps every outcome onto the envelope.
// It never returns a Go error; failures are carried in the Response.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body interface{}) *Response[T] {
	start := time.Now()
	resource := resourceOf(path)

	resp := c.roundTrip(ctx, method, path, query, body)
	out := decode[T](resp)

	code := "OK"
	if !out.Success() {
		code = out.Err().Code
	}
	metrics.RecordCalcomRequest(method, resource, code, time.Since(start))
	c.logger.Debug("calcom request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.status),
		zap.String("code", code),
		zap.Duration("duration", time.Since(start)),
	)

	return out
}

// rawResponse is the transport-level outcome of a call before envelope decoding
type rawResponse struct {
	status int
	body   []byte
	err    *APIError
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body interface{}) rawResponse {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return rawResponse{err: &APIError{
				Message: fmt.Sprintf("failed to marshal request body: %v", err),
				Code:    CodeUnknown,
			}}
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return rawResponse{err: &APIError{Message: err.Error(), Code: CodeNetworkError}}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("cal-api-version", c.apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return rawResponse{err: transportError(err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return rawResponse{status: resp.StatusCode, err: transportError(err)}
	}

	return rawResponse{status: resp.StatusCode, body: respBody}
}

// transportError classifies a failure that happened before a full body was read
func transportError(err error) *APIError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &APIError{Message: "Request timeout", Code: CodeTimeout}
	}

	msg := err.Error()
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		msg = urlErr.Err.Error()
	}
	if msg == "" {
		msg = "Network error occurred"
	}
	return &APIError{Message: msg, Code: CodeNetworkError}
}

func decode[T any](raw rawResponse) *Response[T] {
	if raw.err != nil {
		return Fail[T](raw.err.Code, raw.err.Message)
	}

	var parsed interface{}
	if err := json.Unmarshal(raw.body, &parsed); err != nil {
		return Fail[T](CodeParseError, "Invalid JSON response from API")
	}

	if raw.status < 200 || raw.status >= 300 {
		message, code := upstreamError(parsed)
		if message == "" {
			message = fmt.Sprintf("HTTP %d: %s", raw.status, http.StatusText(raw.status))
		}
		if code == "" {
			code = strconv.Itoa(raw.status)
		}
		return Fail[T](code, message)
	}

	obj, ok := parsed.(map[string]interface{})
	if !ok {
		return Fail[T](CodeInvalidResponse, "Invalid response structure from API")
	}
	if _, ok := obj["status"]; !ok {
		return Fail[T](CodeInvalidResponse, "Invalid response structure from API")
	}

	var env struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
		Error  *APIError       `json:"error"`
	}
	if err := json.Unmarshal(raw.body, &env); err != nil {
		return Fail[T](CodeParseError, fmt.Sprintf("failed to decode response envelope: %v", err))
	}

	out := &Response[T]{Status: env.Status, Error: env.Error}
	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		out.Raw = env.Data
		// json.Unmarshal keeps decoding past a type mismatch, so Data stays
		// populated for every field that does fit.
		_ = json.Unmarshal(env.Data, &out.Data)
	}
	return out.normalize()
}

// upstreamError pulls message and code from an error body. Top-level fields win
// over the nested error object.
func upstreamError(parsed interface{}) (message, code string) {
	obj, ok := parsed.(map[string]interface{})
	if !ok {
		return "", ""
	}
	message = stringField(obj, "message")
	code = stringField(obj, "code")
	if nested, ok := obj["error"].(map[string]interface{}); ok {
		if message == "" {
			message = stringField(nested, "message")
		}
		if code == "" {
			code = stringField(nested, "code")
		}
	}
	return message, code
}

func stringField(obj map[string]interface{}, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func resourceOf(path string) string {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

func idPath(resource string, id int) string {
	return "/" + resource + "/" + strconv.Itoa(id)
}

func uidPath(resource, uid string) string {
	return "/" + resource + "/" + url.PathEscape(uid)
}
