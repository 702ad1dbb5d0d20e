package httpbridge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soypete/rendevu/pkg/llm"
	"github.com/soypete/rendevu/pkg/webhook"
)

// stubProvider validates like a real provider and returns canned output
type stubProvider struct {
	err error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) GenerateMeetingSummary(ctx context.Context, req *llm.MeetingSummaryRequest) (*llm.MeetingSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return &llm.MeetingSummaryResponse{Summary: "ok", KeyPoints: []string{}, ActionItems: []string{}}, nil
}

func (p *stubProvider) GenerateSchedulingSuggestion(ctx context.Context, req *llm.SchedulingSuggestionRequest) (*llm.SchedulingSuggestionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return &llm.SchedulingSuggestionResponse{Suggestion: "Tuesday 10:00"}, nil
}

func (p *stubProvider) GenerateEmail(ctx context.Context, req *llm.EmailGenerationRequest) (*llm.EmailGenerationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return &llm.EmailGenerationResponse{Subject: "Confirmed", Body: "Hi " + req.RecipientName}, nil
}

func (p *stubProvider) GenerateMeetingBrief(ctx context.Context, req *llm.MeetingBriefRequest) (*llm.MeetingBriefResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return &llm.MeetingBriefResponse{Brief: "prep"}, nil
}

func newTestServer(t *testing.T, providerErr error) *httptest.Server {
	t.Helper()
	provider := &stubProvider{err: providerErr}
	s := NewServer(provider, webhook.NewDispatcher(provider, nil), nil)
	s.now = func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) }

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

const createdWebhook = `{
	"triggerEvent": "BOOKING_CREATED",
	"createdAt": "2024-01-15T09:00:00Z",
	"payload": {
		"uid": "bk_1",
		"title": "Intro call",
		"startTime": "2024-01-16T10:00:00Z",
		"endTime": "2024-01-16T10:30:00Z",
		"organizer": {"name": "Pedro", "email": "pedro@example.com", "timeZone": "UTC"},
		"attendees": [{"name": "Jane", "email": "jane@example.com"}],
		"metadata": {"source": "landing"}
	}
}`

func TestWebhookRejectsInvalidPayload(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"not json", `nope`, "Invalid webhook payload"},
		{"missing trigger", `{"payload": {}}`, "Invalid webhook payload"},
		{"missing payload", `{"triggerEvent": "BOOKING_CREATED"}`, "Invalid webhook payload"},
		{"unknown event", `{"triggerEvent": "BOOKING_DELETED", "payload": {}}`, "Unknown webhook event: BOOKING_DELETED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, out := post(t, ts, "/webhooks/calcom", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.want, out["error"])
		})
	}
}

func TestWebhookBookingCreated(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, out := post(t, ts, "/webhooks/calcom", createdWebhook)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "BOOKING_CREATED", out["event"])

	data := out["data"].(map[string]interface{})
	assert.Equal(t, "prep", data["brief"].(map[string]interface{})["brief"])
	assert.Equal(t, "Hi Jane", data["email"].(map[string]interface{})["body"])
}

func TestWebhookUnhandledEvent(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, out := post(t, ts, "/webhooks/calcom", `{"triggerEvent": "RECORDING_READY", "payload": {"uid": "bk_1"}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := out["data"].(map[string]interface{})
	assert.Equal(t, "No handler registered for event: RECORDING_READY", data["message"])
}

func TestWebhookHandlerFailure(t *testing.T) {
	ts := newTestServer(t, errors.New("quota exceeded"))

	resp, out := post(t, ts, "/webhooks/calcom", createdWebhook)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "quota exceeded", out["error"])
	assert.NotContains(t, out, "data")
}

func TestAIRoutesValidation(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		path string
		body string
		want string
	}{
		{"/ai/summary", `{"title": "x"}`, "Missing required fields: title, organizer, attendees, duration"},
		{"/ai/scheduling", `{}`, "Missing required field: userMessage"},
		{"/ai/email", `{"type": "confirmation"}`, "Missing required fields: type, booking, recipientName"},
		{"/ai/email", `{"type": "memo", "booking": {"title": "x"}, "recipientName": "Jane"}`, "Invalid email type: memo"},
		{"/ai/brief", `{"title": "x"}`, "Missing required fields: title, attendees"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, out := post(t, ts, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.want, out["error"])
		})
	}
}

func TestAIRoutesSuccess(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, out := post(t, ts, "/ai/scheduling", `{"userMessage": "Find me 30 minutes next week"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tuesday 10:00", out["suggestion"])

	resp, out = post(t, ts, "/ai/summary", `{"title": "Sync", "organizer": "Pedro", "attendees": ["Jane"], "duration": 30}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", out["summary"])

	resp, out = post(t, ts, "/ai/email", `{"type": "reminder", "booking": {"title": "Sync", "startTime": "s", "endTime": "e", "attendees": [], "organizer": "Pedro"}, "recipientName": "Jane"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hi Jane", out["body"])

	resp, out = post(t, ts, "/ai/brief", `{"title": "Kickoff", "attendees": [{"name": "Jane", "email": "jane@example.com"}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "prep", out["brief"])
}

func TestAIRouteProviderError(t *testing.T) {
	ts := newTestServer(t, errors.New("anthropic summary: no JSON found in response"))

	resp, out := post(t, ts, "/ai/summary", `{"title": "Sync", "organizer": "Pedro", "attendees": ["Jane"], "duration": 30}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "anthropic summary: no JSON found in response", out["error"])
}

func TestAIRouteRejectsMalformedBody(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, out := post(t, ts, "/ai/brief", `{"title": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, out["error"], "Invalid request")
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/ai/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, HealthResponse{Status: "ok", Provider: "stub", Timestamp: "2024-01-15T10:00:00Z"}, health)
}

func TestRequestIDHeader(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/ai/health")
	require.NoError(t, err)
	resp.Body.Close()
	_, err = uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/ai/health", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "caller-supplied")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "caller-supplied", resp.Header.Get(RequestIDHeader))
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/ai/summary")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/ai/health")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `rendevu_http_requests_total{method="GET",path="/ai/health",status="200"}`)
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/ai/email", routeLabel("/ai/email"))
	assert.Equal(t, "other", routeLabel("/wp-admin"))
}

func TestRunStopsOnCancel(t *testing.T) {
	provider := &stubProvider{}
	s := NewServer(provider, webhook.NewDispatcher(provider, nil), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, "127.0.0.1:0", time.Second)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
