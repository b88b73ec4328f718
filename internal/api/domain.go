package api

import (
	"github.com/JaimeStill/ministry-cms/internal/articles"
	"github.com/JaimeStill/ministry-cms/internal/documents"
	"github.com/JaimeStill/ministry-cms/internal/images"
	"github.com/JaimeStill/ministry-cms/pkg/convert"
)

// Domain holds the domain systems served by the API.
type Domain struct {
	Articles  articles.System
	Images    images.System
	Documents documents.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	articlesSys := articles.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	imagesSys := images.New(runtime.Storage, runtime.Logger)

	documentsSys := documents.New(
		convert.New(runtime.Logger),
		imagesSys,
		runtime.Logger,
	)

	return &Domain{
		Articles:  articlesSys,
		Images:    imagesSys,
		Documents: documentsSys,
	}
}
