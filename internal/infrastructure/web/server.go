// Package web serves the research front-end: a form page, the dispatch
// endpoint, the sample CSV and a health probe.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"

	"github.com/nomi00700/agno-multi-agent/internal/application/port/output"
)

type Server struct {
	httpServer *http.Server
	logger     output.LoggerPort
}

type ServerConfig struct {
	Addr    string
	Handler *Handler
	Logger  output.LoggerPort
}

func NewServer(cfg ServerConfig) *Server {
	requestLogger := httplog.NewLogger("research-hub", httplog.Options{
		JSON:    true,
		Concise: true,
	})

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(httplog.RequestLogger(requestLogger))

	r.Get("/", cfg.Handler.handleIndex)
	r.Post("/research", cfg.Handler.handleResearch)
	r.Get("/sample.csv", cfg.Handler.handleSampleCSV)
	r.Get("/health", cfg.Handler.handleHealth)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: cfg.Logger,
	}
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}
