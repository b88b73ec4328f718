package main

import (
	"time"

	"github.com/JaimeStill/ministry-cms/internal/config"
	"github.com/JaimeStill/ministry-cms/internal/infrastructure"
	"github.com/JaimeStill/ministry-cms/internal/server"
	"github.com/JaimeStill/ministry-cms/pkg/middleware"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	handler := middleware.TrimSlash()(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    server.New(&cfg.Server, handler, infra.Logger),
	}, nil
}

// Start begins all subsystems. Readiness is reported once every startup hook returns.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready", "addr", s.http.Addr())
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
