// Package api assembles the HTTP API module: domain systems, routes, the
// OpenAPI document, and the module middleware.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/ministry-cms/internal/config"
	"github.com/JaimeStill/ministry-cms/internal/infrastructure"
	"github.com/JaimeStill/ministry-cms/pkg/middleware"
	"github.com/JaimeStill/ministry-cms/pkg/module"
	"github.com/JaimeStill/ministry-cms/pkg/openapi"
)

// NewModule creates the API module mounted at cfg.API.BasePath.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	cfg.API.OpenAPI.Apply(spec)
	if cfg.Domain != "" {
		spec.AddServer(cfg.Domain)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, spec, cfg.API.BasePath, runtime, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.Timeout(cfg.API.RequestTimeoutDuration()))

	return m, nil
}
