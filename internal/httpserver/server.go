package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-pray-cache/internal/interfaces"
)

const (
	maxRequestBody     = 1 << 20
	healthCheckTimeout = 2 * time.Second
)

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// Server exposes health, metrics and cache invalidation over HTTP
type Server struct {
	invalidator interfaces.Invalidator
	logger      *zap.Logger
	validate    *validator.Validate
	checks      map[string]HealthCheck
	server      *http.Server
}

// NewServer creates a new ops HTTP server
func NewServer(invalidator interfaces.Invalidator, logger *zap.Logger) *Server {
	return &Server{
		invalidator: invalidator,
		logger:      logger,
		validate:    validator.New(),
		checks:      make(map[string]HealthCheck),
	}
}

// AddHealthCheck registers a named probe reported by /health. Call before serving.
func (s *Server) AddHealthCheck(name string, check HealthCheck) {
	s.checks[name] = check
}

// StartUnixSocket starts the HTTP server on a Unix socket
func (s *Server) StartUnixSocket(socketPath string) error {
	// Remove existing socket file
	if err := os.RemoveAll(socketPath); err != nil {
		s.logger.Warn("Failed to remove existing socket file", zap.String("path", socketPath), zap.Error(err))
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", socketPath, err)
	}

	// Readable/writable by owner and group
	if err := os.Chmod(socketPath, 0660); err != nil {
		s.logger.Warn("Failed to set socket permissions", zap.String("path", socketPath), zap.Error(err))
	}

	s.server = &http.Server{
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting ops HTTP server on Unix socket", zap.String("socket_path", socketPath))
	return s.server.Serve(listener)
}

// Stop stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("Stopping ops HTTP server")
	return s.server.Shutdown(ctx)
}

// Router builds the route table
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/cache/invalidate", s.handleInvalidate).Methods(http.MethodPost)
	router.HandleFunc("/cache/invalidate-prefix", s.handleInvalidatePrefix).Methods(http.MethodPost)

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

// handleHealth runs every registered probe
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}

	if len(s.checks) > 0 {
		response.Checks = make(map[string]string, len(s.checks))
	}
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("check", name), zap.Error(err))
			response.Checks[name] = err.Error()
			response.Status = "degraded"
			continue
		}
		response.Checks[name] = "ok"
	}

	if response.Status != "healthy" {
		s.writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	s.writeJSON(w, http.StatusOK, response)
}

// parseRequest decodes and validates a JSON request body
func (s *Server) parseRequest(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return err
	}
	defer r.Body.Close()

	if err := json.Unmarshal(body, v); err != nil {
		return err
	}
	return s.validate.Struct(v)
}

// writeJSON writes v with the given status
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeErrorResponse writes error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	s.writeJSON(w, statusCode, &InvalidateResponse{
		Success: false,
		Error:   message,
	})
}
