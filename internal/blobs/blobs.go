// Package blobs serves stored images and documents over HTTP.
package blobs

import (
	"bytes"
	"encoding/hex"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"time"

	"github.com/zeebo/blake3"

	"github.com/JaimeStill/ministry-cms/pkg/handlers"
	"github.com/JaimeStill/ministry-cms/pkg/routes"
	"github.com/JaimeStill/ministry-cms/pkg/storage"
)

// cacheControl applies to every blob. Stored keys carry a UUID and are never rewritten.
const cacheControl = "public, max-age=31536000, immutable"

// Handler streams blobs from storage.
type Handler struct {
	storage storage.System
	logger  *slog.Logger
}

// NewHandler creates a blobs HTTP handler.
func NewHandler(store storage.System, logger *slog.Logger) *Handler {
	return &Handler{
		storage: store,
		logger:  logger.With("handler", "blobs"),
	}
}

// Routes returns the route group for blob retrieval.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/blobs",
		Tags:        []string{"Blobs"},
		Description: "Stored images and documents",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{key...}", Handler: h.Get, OpenAPI: Spec.Get},
		},
	}
}

// Get handles GET /blobs/{key...}. Conditional and range requests are
// answered by http.ServeContent using the BLAKE3 ETag.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	data, err := h.storage.Retrieve(r.Context(), key)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", ContentType(key, data))
	w.Header().Set("ETag", ETag(data))
	w.Header().Set("Cache-Control", cacheControl)

	http.ServeContent(w, r, path.Base(key), time.Time{}, bytes.NewReader(data))
}

// ETag returns a strong entity tag holding the BLAKE3 digest of data.
func ETag(data []byte) string {
	sum := blake3.Sum256(data)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// ContentType resolves the media type from the key's extension and sniffs
// data when the extension is unknown.
func ContentType(key string, data []byte) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}

// MapHTTPStatus maps storage errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrInvalidKey):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
