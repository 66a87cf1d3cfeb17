package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/recruitflow/recruitflow/internal/api"
)

// APIHandler handles API method dispatch.
type APIHandler interface {
	Handle(ctx context.Context, method string, params json.RawMessage) (any, error)
}

// Server wires HTTP handlers.
type Server struct {
	handler APIHandler
	logger  *slog.Logger
}

// NewServer creates an HTTP router with middleware. A non-nil mcp
// handler is mounted at /mcp alongside the JSON-RPC endpoint.
func NewServer(handler APIHandler, logger *slog.Logger, authToken string, mcp http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestLogger(logger))
	r.Use(AuthMiddleware(authToken))

	srv := &Server{handler: handler, logger: logger}

	r.Post("/rpc", srv.handleRPC)
	r.Get("/health", srv.handleHealth)
	if mcp != nil {
		r.Handle("/mcp", mcp)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		WriteError(w, nil, ErrInvalidReq, "invalid request", nil)
		return
	}

	result, err := s.handler.Handle(r.Context(), req.Method, req.Params)
	if err != nil {
		s.writeHandlerError(w, req, err)
		return
	}

	WriteResult(w, req.ID, result)
}

func (s *Server) writeHandlerError(w http.ResponseWriter, req Request, err error) {
	if errors.Is(err, api.ErrUnknownMethod) {
		WriteError(w, req.ID, ErrMethodNotFound, err.Error(), nil)
		return
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		WriteError(w, req.ID, ErrInvalidParams, apiErr.Message, apiErr)
		return
	}
	WriteError(w, req.ID, ErrInternal, err.Error(), nil)
}

// RequestLogger logs each request with method, path, and duration.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			if logger != nil {
				logger.Debug("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
				)
			}
		})
	}
}
