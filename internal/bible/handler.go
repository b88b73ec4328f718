package bible

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/ministry-cms/pkg/handlers"
	"github.com/JaimeStill/ministry-cms/pkg/routes"
)

// Handler serves the book catalog.
type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger.With("handler", "bible")}
}

// Routes returns the route group for the book catalog.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/bible",
		Tags:        []string{"Bible"},
		Description: "Canonical books, chapter and verse counts",
		Schemas:     Spec.Schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/books", Handler: h.Books, OpenAPI: Spec.Books},
			{Method: "GET", Pattern: "/book", Handler: h.Book, OpenAPI: Spec.Book},
			{Method: "GET", Pattern: "/books/{book}/chapter", Handler: h.Chapter, OpenAPI: Spec.Chapter},
		},
	}
}

// Books handles GET /bible/books?key=all|old|new.
func (h *Handler) Books(w http.ResponseWriter, r *http.Request) {
	names, err := BookNames(r.URL.Query().Get("key"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, names)
}

// Book handles GET /bible/book?book_name=.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	book, err := FindBook(r.URL.Query().Get("book_name"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, book)
}

// Chapter handles GET /bible/books/{book}/chapter?chapter=.
func (h *Handler) Chapter(w http.ResponseWriter, r *http.Request) {
	chapter, err := FindChapter(r.PathValue("book"), r.URL.Query().Get("chapter"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, chapter)
}
