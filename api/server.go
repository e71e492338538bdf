// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration, output serialization.
// The API NEVER performs cost logic.
package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storage-cost/core/engine"
	"storage-cost/internal/errors"
)

// maxRequestBytes bounds the size of a request body
const maxRequestBytes = 1 << 20

// requestIDHeader carries the request ID in both directions
const requestIDHeader = "X-Request-ID"

// Options configures a Server
type Options struct {
	// Version is reported by /health and /version
	Version string

	// MaxMonths bounds the requested horizon; zero means unbounded
	MaxMonths int

	// Logger receives one entry per request
	Logger *zap.Logger
}

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	engine  *engine.Engine
	version string
	logger  *zap.Logger
}

// NewServer creates a new API server
func NewServer(eng *engine.Engine, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		handler: NewHandler(eng, opts.MaxMonths),
		mux:     http.NewServeMux(),
		engine:  eng,
		version: opts.Version,
		logger:  logger,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("GET /providers", s.handleProviders)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Supporting endpoints
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := w.Header().Get(requestIDHeader)

	var req EstimateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	inputHash := computeInputHash(&req)

	// Execute engine (NO COST LOGIC HERE)
	result, err := s.handler.execute(r.Context(), &req)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	result.Metadata = &ResponseMetadata{
		RequestID:     requestID,
		InputHash:     inputHash,
		EngineVersion: s.version,
		DurationMs:    time.Since(start).Milliseconds(),
	}

	s.logger.Info("estimate served",
		zap.String("request_id", requestID),
		zap.String("input_hash", inputHash),
		zap.Int("months", req.Months),
		zap.Int("providers", len(result.Results)),
	)
	s.writeJSON(w, result, http.StatusOK)
}

// handleProviders handles GET /providers
func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	providers := s.engine.Catalog().Providers()
	s.writeJSON(w, ProvidersResponse{
		Providers: providers,
		Count:     len(providers),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{
		"status":    "healthy",
		"version":   s.version,
		"providers": s.engine.Catalog().Len(),
		"time":      time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "storage-cost",
		"api_version": "v1",
	}, http.StatusOK)
}

// writeEngineError maps typed errors to status codes
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch errors.TypeOf(err) {
	case errors.TypeInput:
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.TypeNotFound:
		s.writeError(w, "UNKNOWN_PROVIDER", err.Error(), http.StatusBadRequest)
	default:
		if stderrors.Is(err, context.Canceled) {
			s.writeError(w, "CANCELED", err.Error(), http.StatusServiceUnavailable)
			return
		}
		s.logger.Error("estimate failed", zap.Error(err))
		s.writeError(w, "ENGINE_ERROR", err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{
		Error: ErrorBody{Code: code, Message: message},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := r.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set(requestIDHeader, requestID)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)

	s.logger.Debug("request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
