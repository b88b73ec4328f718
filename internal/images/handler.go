package images

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/ministry-cms/pkg/handlers"
	"github.com/JaimeStill/ministry-cms/pkg/routes"
)

// FormField is the multipart field carrying the image.
const FormField = "image-file"

// Handler provides the image upload endpoint.
type Handler struct {
	sys     System
	logger  *slog.Logger
	maxSize int64
}

// NewHandler creates an images HTTP handler accepting files up to maxSize bytes.
func NewHandler(sys System, logger *slog.Logger, maxSize int64) *Handler {
	return &Handler{
		sys:     sys,
		logger:  logger.With("handler", "images"),
		maxSize: maxSize,
	}
}

// Routes returns the route group for image uploads.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/documents",
		Tags:        []string{"Documents"},
		Description: "Uploads and conversions",
		Schemas:     Spec.Schemas,
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/images", Handler: h.Upload, OpenAPI: Spec.Upload},
		},
	}
}

// Upload handles POST /documents/images?key={prefix}.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
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

	if !ValidContentType(file.ContentType) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %s", ErrInvalidType, file.ContentType))
		return
	}

	key := UploadKey(prefix, file.Filename, file.ContentType)

	result, err := h.sys.Upload(r.Context(), file.Data, key, file.ContentType)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
