package api

import (
	"github.com/JaimeStill/ministry-cms/internal/config"
	"github.com/JaimeStill/ministry-cms/internal/infrastructure"
	"github.com/JaimeStill/ministry-cms/pkg/pagination"
)

// Runtime is the infrastructure as seen by API handlers, plus the request
// limits they enforce.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination       pagination.Config
	MaxImageBytes    int64
	MaxDocumentBytes int64
}

// NewRuntime scopes the logger to module=api. Upload limits are resolved
// here so handlers never see unparsed sizes.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	scoped := *infra
	scoped.Logger = infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure:   &scoped,
		Pagination:       cfg.API.Pagination,
		MaxImageBytes:    cfg.Uploads.MaxImageBytes(),
		MaxDocumentBytes: cfg.Uploads.MaxDocumentBytes(),
	}
}
