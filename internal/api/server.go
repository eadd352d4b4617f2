package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Project-Sylos/Mirage/internal/session"
	"github.com/Project-Sylos/Mirage/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP API server
type Server struct {
	router *chi.Mux
	http   *http.Server
	config *types.Config
	log    logrus.FieldLogger
}

// NewServer creates a new API server
func NewServer(manager *session.Manager, config *types.Config, logger logrus.FieldLogger) *Server {
	router := NewRouter(manager, config).SetupRoutes()
	addr := fmt.Sprintf("%s:%d", config.API.Host, config.API.Port)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		config: config,
		log:    logger,
	}
}

// Start starts the HTTP server and blocks until it stops.
// A graceful Stop returns nil.
func (s *Server) Start() error {
	s.log.WithField("addr", s.http.Addr).Info("starting Mirage API server")
	s.log.Infof("API endpoints available at http://%s/api/v1/", s.http.Addr)
	s.log.Infof("Health check available at http://%s/health", s.http.Addr)

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// GetRouter returns the configured router
func (s *Server) GetRouter() *chi.Mux {
	return s.router
}

// Stop gracefully shuts the server down
func (s *Server) Stop(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
