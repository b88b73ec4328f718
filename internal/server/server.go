// Package server runs the HTTP listener under the lifecycle coordinator.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/JaimeStill/ministry-cms/internal/config"
	"github.com/JaimeStill/ministry-cms/pkg/lifecycle"
)

// System owns the HTTP server.
type System interface {
	Start(lc *lifecycle.Coordinator) error
	Addr() string
}

type server struct {
	http            *http.Server
	listener        net.Listener
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

func New(cfg *config.ServerConfig, handler http.Handler, logger *slog.Logger) System {
	return &server{
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeoutDuration(),
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      cfg.WriteTimeoutDuration(),
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger:          logger.With("system", "server"),
		shutdownTimeout: cfg.ShutdownTimeoutDuration(),
	}
}

// Addr reports the bound address once Start has succeeded.
func (s *server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.http.Addr
}

// Start binds the listener synchronously so address errors surface here,
// then serves in the background until the lifecycle context is cancelled.
// Request contexts are not derived from the lifecycle context: in-flight
// requests drain within the shutdown timeout.
func (s *server) Start(lc *lifecycle.Coordinator) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	s.listener = ln

	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
			return
		}
		s.logger.Info("server shutdown complete")
	})

	return nil
}
