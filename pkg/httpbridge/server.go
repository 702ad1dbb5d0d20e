// Package httpbridge exposes the webhook relay and the generative text
// operations over HTTP.
package httpbridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/soypete/rendevu/pkg/llm"
	"github.com/soypete/rendevu/pkg/webhook"
)

// maxBodyBytes bounds a decoded request body
const maxBodyBytes = 1 << 20

// Server represents the HTTP server
type Server struct {
	provider   llm.Provider
	dispatcher *webhook.Dispatcher
	logger     *zap.Logger
	mux        *http.ServeMux
	now        func() time.Time
}

// NewServer creates the relay server. Webhook events are dispatched through
// dispatcher; the /ai routes call provider directly.
func NewServer(provider llm.Provider, dispatcher *webhook.Dispatcher, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		provider:   provider,
		dispatcher: dispatcher,
		logger:     logger,
		mux:        http.NewServeMux(),
		now:        time.Now,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("POST /webhooks/calcom", s.handleWebhook)

	s.mux.HandleFunc("POST /ai/summary", s.handleSummary)
	s.mux.HandleFunc("POST /ai/scheduling", s.handleScheduling)
	s.mux.HandleFunc("POST /ai/email", s.handleEmail)
	s.mux.HandleFunc("POST /ai/brief", s.handleBrief)
	s.mux.HandleFunc("GET /ai/health", s.handleHealth)

	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// Handler returns the routes wrapped with request logging and metrics
func (s *Server) Handler() http.Handler {
	return s.instrument(s.mux)
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests
// for up to shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", zap.String("addr", addr), zap.String("provider", s.provider.Name()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	return nil
}
