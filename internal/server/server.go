// AngelaMos | 2026
// server.go

package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agrovia/farmconnect/internal/config"
)

// ShutdownMarker is implemented by handlers that need to flip into a
// draining state before the listener closes, so load balancers see the
// readiness probe fail ahead of connection teardown.
type ShutdownMarker interface {
	SetShutdown()
}

type Config struct {
	ServerConfig config.ServerConfig
	Marker       ShutdownMarker
	Logger       *slog.Logger
}

type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	marker     ShutdownMarker
	logger     *slog.Logger
}

func New(cfg Config) *Server {
	router := chi.NewRouter()

	httpServer := &http.Server{
		Addr:         cfg.ServerConfig.Address(),
		Handler:      router,
		ReadTimeout:  cfg.ServerConfig.ReadTimeout,
		WriteTimeout: cfg.ServerConfig.WriteTimeout,
		IdleTimeout:  cfg.ServerConfig.IdleTimeout,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		marker:     cfg.Marker,
		logger:     cfg.Logger,
	}
}

func (s *Server) Router() *chi.Mux {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.httpServer.Addr)

	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown marks the server as draining, waits drainDelay for load
// balancers to notice, then gracefully stops the listener.
func (s *Server) Shutdown(ctx context.Context, drainDelay time.Duration) error {
	if s.marker != nil {
		s.marker.SetShutdown()
	}

	s.logger.Info("draining connections", "delay", drainDelay)

	select {
	case <-time.After(drainDelay):
	case <-ctx.Done():
	}

	return s.httpServer.Shutdown(ctx)
}
