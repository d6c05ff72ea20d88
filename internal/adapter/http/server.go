package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/sos-alert-service/internal/alert"
)

// Server exposes the alert API plus health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	svc        *alert.Service
	logger     *slog.Logger
	endpoints  []string
	started    time.Time
}

// NewServer builds the route table. /get-district is only registered when
// the active strategy resolves coordinates; under the asserted strategy it
// falls through to the 404 handler.
func NewServer(addr string, svc *alert.Service, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		svc:     svc,
		logger:  logger,
		started: time.Now(),
	}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      recoverPanics(mux, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.endpoints = []string{
		"GET /health",
		"POST /sos",
		"POST /test-sos",
	}
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /sos", s.handleSOS)
	mux.HandleFunc("POST /test-sos", s.handleTestSOS)
	if svc.RequiresCoordinate() {
		s.endpoints = append(s.endpoints, "POST /get-district")
		mux.HandleFunc("POST /get-district", s.handleGetDistrict)
	}

	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("/", s.handleNotFound)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"strategy":  s.svc.Strategy(),
		"uptime":    time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.svc.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":              "Endpoint not found",
		"availableEndpoints": s.endpoints,
	})
}

// recoverPanics converts uncaught handler panics into a JSON 500.
func recoverPanics(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("handler panic", "path", r.URL.Path, "panic", rec)
				writeJSON(w, http.StatusInternalServerError, map[string]string{
					"error":   "Internal server error",
					"message": fmt.Sprint(rec),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
