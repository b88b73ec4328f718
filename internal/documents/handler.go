package documents

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/ministry-cms/pkg/handlers"
	"github.com/JaimeStill/ministry-cms/pkg/routes"
)

// Handler provides the Word conversion endpoint.
type Handler struct {
	sys     System
	logger  *slog.Logger
	maxSize int64
}

// NewHandler creates a documents HTTP handler accepting files up to maxSize bytes.
func NewHandler(sys System, logger *slog.Logger, maxSize int64) *Handler {
	return &Handler{
		sys:     sys,
		logger:  logger.With("handler", "documents"),
		maxSize: maxSize,
	}
}

// Routes returns the route group for document conversion.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/documents",
		Tags:        []string{"Documents"},
		Description: "Uploads and conversions",
		Schemas:     Spec.Schemas,
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/word-documents", Handler: h.Convert, OpenAPI: Spec.Convert},
		},
	}
}

// Convert handles POST /documents/word-documents?key={prefix}.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("key")
	if !ValidPrefix(prefix) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %q", ErrInvalidKey, prefix))
		return
	}

	file, err := handlers.FormFile(w, r, FormField, h.maxSize)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	contentType := ContentType(file.ContentType, file.Filename)
	if !ValidContentType(contentType) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %s", ErrInvalidType, contentType))
		return
	}

	result, err := h.sys.Convert(r.Context(), file.Data, prefix)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
