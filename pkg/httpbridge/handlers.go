package httpbridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/soypete/rendevu/pkg/llm"
	"github.com/soypete/rendevu/pkg/webhook"
)

// ErrorResponse is the body of every non-webhook failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Provider  string `json:"provider"`
	Timestamp string `json:"timestamp"`
}

// handleWebhook relays a Cal.com webhook to the dispatcher
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var payload webhook.Payload
	if err := decodeBody(w, r, &payload); err != nil || payload.TriggerEvent == "" || payload.Payload == nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid webhook payload"})
		return
	}
	if !payload.TriggerEvent.Valid() {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Unknown webhook event: %s", payload.TriggerEvent),
		})
		return
	}

	s.logger.Info("received cal.com webhook", zap.String("event", string(payload.TriggerEvent)))
	result := s.dispatcher.Handle(r.Context(), payload)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}
	respondJSON(w, status, result)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req llm.MeetingSummaryRequest
	if !s.decodeValid(w, r, &req, req.Validate) {
		return
	}
	resp, err := s.provider.GenerateMeetingSummary(r.Context(), &req)
	s.respondGenerated(w, "summary", resp, err)
}

func (s *Server) handleScheduling(w http.ResponseWriter, r *http.Request) {
	var req llm.SchedulingSuggestionRequest
	if !s.decodeValid(w, r, &req, req.Validate) {
		return
	}
	resp, err := s.provider.GenerateSchedulingSuggestion(r.Context(), &req)
	s.respondGenerated(w, "scheduling", resp, err)
}

func (s *Server) handleEmail(w http.ResponseWriter, r *http.Request) {
	var req llm.EmailGenerationRequest
	if !s.decodeValid(w, r, &req, req.Validate) {
		return
	}
	resp, err := s.provider.GenerateEmail(r.Context(), &req)
	s.respondGenerated(w, "email", resp, err)
}

func (s *Server) handleBrief(w http.ResponseWriter, r *http.Request) {
	var req llm.MeetingBriefRequest
	if !s.decodeValid(w, r, &req, req.Validate) {
		return
	}
	resp, err := s.provider.GenerateMeetingBrief(r.Context(), &req)
	s.respondGenerated(w, "brief", resp, err)
}

// handleHealth reports the configured provider
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Provider:  s.provider.Name(),
		Timestamp: s.now().UTC().Format(time.RFC3339),
	})
}

// decodeValid decodes the body into v and runs validate, writing a 400 on
// failure. validate is a method value bound to v.
func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, v interface{}, validate func() error) bool {
	if err := decodeBody(w, r, v); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("Invalid request: %v", err)})
		return false
	}
	if err := validate(); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func (s *Server) respondGenerated(w http.ResponseWriter, operation string, resp interface{}, err error) {
	if err != nil {
		var verr *llm.ValidationError
		if errors.As(err, &verr) {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message})
			return
		}
		s.logger.Error("generation failed", zap.String("operation", operation), zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
