package api

import (
	"net/http"

	"github.com/JaimeStill/ministry-cms/internal/articles"
	"github.com/JaimeStill/ministry-cms/internal/bible"
	"github.com/JaimeStill/ministry-cms/internal/blobs"
	"github.com/JaimeStill/ministry-cms/internal/documents"
	"github.com/JaimeStill/ministry-cms/internal/images"
	"github.com/JaimeStill/ministry-cms/pkg/openapi"
	"github.com/JaimeStill/ministry-cms/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	basePath string,
	runtime *Runtime,
	domain *Domain,
) {
	articlesHandler := articles.NewHandler(domain.Articles, runtime.Logger, runtime.Pagination)
	imagesHandler := images.NewHandler(domain.Images, runtime.Logger, runtime.MaxImageBytes)
	documentsHandler := documents.NewHandler(domain.Documents, runtime.Logger, runtime.MaxDocumentBytes)
	blobsHandler := blobs.NewHandler(runtime.Storage, runtime.Logger)
	bibleHandler := bible.NewHandler(runtime.Logger)

	routes.Register(
		mux,
		basePath,
		spec,
		articlesHandler.Routes(),
		imagesHandler.Routes(),
		documentsHandler.Routes(),
		blobsHandler.Routes(),
		bibleHandler.Routes(),
	)
}
