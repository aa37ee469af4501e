package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// checkTimeout bounds the whole health check
const checkTimeout = 3 * time.Second

// Checker verifies that a dependency is reachable
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// Check calls f
func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// Handler reports the status of each named dependency
type Handler struct {
	checks map[string]Checker
	logger *zap.Logger
}

// NewHandler creates a health handler
func NewHandler(logger *zap.Logger, checks map[string]Checker) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{checks: checks, logger: logger}
}

// Routes returns the handler's router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.check)
	return r
}

type result struct {
	Status string `json:"status"`
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	results := make(map[string]result, len(h.checks))
	status := http.StatusOK

	for name, c := range h.checks {
		if err := c.Check(ctx); err != nil {
			h.logger.Error("health check failed", zap.String("name", name), zap.Error(err))
			results[name] = result{Status: "error"}
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = result{Status: "ok"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(results); err != nil {
		h.logger.Warn("failed to write health response", zap.Error(err))
	}
}

// Server serves the health endpoint
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewServer mounts the handler at /healthz
func NewServer(addr string, logger *zap.Logger, handler *Handler) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Mount("/healthz", handler.Routes())

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until Shutdown is called
func (s *Server) Run(_ context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.logger.Info("serving health endpoint", zap.String("addr", ln.Addr().String()))
	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting up to ten seconds for open requests
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
