package articles

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/ministry-cms/pkg/handlers"
	"github.com/JaimeStill/ministry-cms/pkg/pagination"
	"github.com/JaimeStill/ministry-cms/pkg/routes"
)

// Handler provides HTTP handlers for article operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates an articles HTTP handler.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "articles"),
		pagination: pagination,
	}
}

// Routes returns the route group for article endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/articles",
		Tags:        []string{"Articles"},
		Description: "Articles and their converted content",
		Schemas:     Spec.Schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "PUT", Pattern: "/{id}", Handler: h.UpdateMetadata, OpenAPI: Spec.UpdateMetadata},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
			{Method: "PUT", Pattern: "/{id}/content", Handler: h.SetContent, OpenAPI: Spec.SetContent},
			{Method: "PUT", Pattern: "/{id}/published", Handler: h.SetPublished, OpenAPI: Spec.SetPublished},
			{Method: "PUT", Pattern: "/{id}/restore", Handler: h.Restore, OpenAPI: Spec.Restore},
			{Method: "GET", Pattern: "/{id}/hits", Handler: h.Hits, OpenAPI: Spec.Hits},
			{Method: "POST", Pattern: "/{id}/hits", Handler: h.AddHit, OpenAPI: Spec.AddHit},
		},
	}
}

// List handles GET /articles.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /articles/{id}.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create handles POST /articles.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	cmd, err := handlers.DecodeJSON[CreateCommand](w, r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateMetadata handles PUT /articles/{id}.
func (h *Handler) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := handlers.DecodeJSON[UpdateMetadataCommand](w, r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.UpdateMetadata(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// SetContent handles PUT /articles/{id}/content.
func (h *Handler) SetContent(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := handlers.DecodeJSON[SetContentCommand](w, r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.SetContent(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// SetPublished handles PUT /articles/{id}/published.
func (h *Handler) SetPublished(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := handlers.DecodeJSON[SetPublishedCommand](w, r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.SetPublished(r.Context(), id, cmd.Published)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /articles/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles PUT /articles/{id}/restore.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Restore(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// AddHit handles POST /articles/{id}/hits.
func (h *Handler) AddHit(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := handlers.DecodeJSON[AddHitCommand](w, r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.AddHit(r.Context(), id, cmd.Hit)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Hits handles GET /articles/{id}/hits.
func (h *Handler) Hits(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Hits(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
