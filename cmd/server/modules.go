package main

import (
	"net/http"

	"github.com/JaimeStill/ministry-cms/internal/api"
	"github.com/JaimeStill/ministry-cms/internal/config"
	"github.com/JaimeStill/ministry-cms/internal/infrastructure"
	"github.com/JaimeStill/ministry-cms/pkg/middleware"
	"github.com/JaimeStill/ministry-cms/pkg/module"
	"github.com/JaimeStill/ministry-cms/web/scalar"
)

// Modules holds the prefix-mounted modules served by the router.
type Modules struct {
	API    *module.Module
	Scalar *module.Module
}

// NewModules creates every module from the shared infrastructure.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	scalarModule, err := scalar.NewModule("/scalar", scalar.Page{
		Title:   cfg.API.OpenAPI.Title,
		SpecURL: cfg.API.BasePath + "/openapi.json",
	})
	if err != nil {
		return nil, err
	}
	scalarModule.Use(middleware.Logger(infra.Logger))

	return &Modules{
		API:    apiModule,
		Scalar: scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Scalar)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := infra.Check(r.Context()); err != nil {
			infra.Logger.Warn("readiness check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
