package configs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bremenlabs/agentops/internal/forms"
	"github.com/bremenlabs/agentops/internal/registry"
	"github.com/bremenlabs/agentops/pkg/handlers"
	"github.com/bremenlabs/agentops/pkg/routes"
)

// SectionResponse is the effective configuration for one section: the
// schema, the default bag overlaid with any saved values, and whether a
// saved record exists.
type SectionResponse struct {
	Key    string       `json:"key"`
	Values forms.Bag    `json:"values"`
	Saved  bool         `json:"saved"`
	Record *AgentConfig `json:"record,omitempty"`
}

// Handler provides HTTP handlers for configuration sections.
type Handler struct {
	sys    System
	reg    *registry.Registry
	logger *slog.Logger
}

// NewHandler creates a configs HTTP handler.
func NewHandler(sys System, reg *registry.Registry, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		reg:    reg,
		logger: logger,
	}
}

// Routes returns the route group for configuration endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/configs",
		Description: "Configuration sections",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/sections", Handler: h.Sections},
			{Method: "GET", Pattern: "/{key}", Handler: h.Find},
			{Method: "PUT", Pattern: "/{key}", Handler: h.Save},
		},
	}
}

// Sections handles GET /api/configs/sections to return every
// configuration section schema: the shared section first, then one per
// agent in catalog order. Clients render their forms from this.
func (h *Handler) Sections(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.reg.Sections())
}

// List handles GET /api/configs to return every saved section.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, results)
}

// Find handles GET /api/configs/{key} to return the effective bag for a
// section: schema defaults overlaid with the saved record when one
// exists. A never-saved section is a normal result, not an error.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	fields, ok := h.reg.SectionFields(key)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, fmt.Errorf("%w: %s", ErrUnknownSection, key))
		return
	}

	form, err := forms.New(fields)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	resp := SectionResponse{Key: key}

	stored, err := h.sys.Find(r.Context(), key)
	switch {
	case err == nil:
		if err := form.Overlay(stored.Value); err != nil {
			h.logger.Warn("stored config has stale fields", "key", key, "error", err)
		}
		resp.Saved = true
		resp.Record = stored
	case errors.Is(err, ErrNotFound):
		// never saved; defaults stand
	default:
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	resp.Values = form.Values()
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Save handles PUT /api/configs/{key} to validate and persist the whole
// bag for a section as one upsert.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	fields, ok := h.reg.SectionFields(key)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, fmt.Errorf("%w: %s", ErrUnknownSection, key))
		return
	}

	var values map[string]any
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	form, err := forms.New(fields)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	if err := form.ApplyAll(values); err != nil {
		handlers.RespondError(w, h.logger, forms.MapHTTPStatus(err), err)
		return
	}

	stored, err := h.sys.Upsert(r.Context(), key, form.Values())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stored)
}
