package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bremenlabs/agentops/internal/logs"
	"github.com/bremenlabs/agentops/internal/schema"
	"github.com/bremenlabs/agentops/internal/status"
	"github.com/bremenlabs/agentops/internal/webhooks"
	"github.com/bremenlabs/agentops/pkg/handlers"
	"github.com/bremenlabs/agentops/pkg/routes"
)

// ErrNotFound reports a lookup of an unknown agent id.
var ErrNotFound = errors.New("agent not found")

// StatusIdle marks an agent with no log entries yet.
const StatusIdle = "idle"

// AgentStatus is the latest known execution state of one agent.
type AgentStatus struct {
	AgentID string         `json:"agent_id"`
	Status  string         `json:"status"`
	Log     *logs.AgentLog `json:"log,omitempty"`
}

// TriggerRequest optionally overrides the default trigger payload.
type TriggerRequest struct {
	Payload map[string]any `json:"payload,omitempty"`
}

// Handler provides HTTP handlers for the agent catalog, trigger
// dispatch, and per-agent status.
type Handler struct {
	reg        *Registry
	dispatcher *webhooks.Dispatcher
	logs       logs.System
	cache      *status.Cache
	logger     *slog.Logger
}

// NewHandler creates an agents HTTP handler. The status cache may be
// nil; lookups then always go to the store.
func NewHandler(reg *Registry, dispatcher *webhooks.Dispatcher, sys logs.System, cache *status.Cache, logger *slog.Logger) *Handler {
	return &Handler{
		reg:        reg,
		dispatcher: dispatcher,
		logs:       sys,
		cache:      cache,
		logger:     logger,
	}
}

// Routes returns the route group for agent endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/agents",
		Description: "Agent catalog, triggers, and status",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/status", Handler: h.Status},
			{Method: "POST", Pattern: "/{id}/trigger", Handler: h.Trigger},
		},
	}
}

// List handles GET /api/agents, optionally filtered by the category
// query parameter, in catalog order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if cat := r.URL.Query().Get("category"); cat != "" {
		category := schema.Category(cat)
		if err := category.Validate(); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		agents := h.reg.ByCategory(category)
		if agents == nil {
			agents = []schema.Definition{}
		}
		handlers.RespondJSON(w, http.StatusOK, agents)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.reg.All())
}

// Find handles GET /api/agents/{id}.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	agent, ok := h.reg.Get(r.PathValue("id"))
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, fmt.Errorf("%w: %s", ErrNotFound, r.PathValue("id")))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, agent)
}

// Status handles GET /api/agents/{id}/status, answering from the warm
// cache when possible and falling back to the store. An agent with no
// log entries reports idle rather than an error.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	agent, ok := h.reg.Get(id)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, fmt.Errorf("%w: %s", ErrNotFound, id))
		return
	}

	if h.cache != nil {
		if entry, ok := h.cache.Latest(agent.ID); ok {
			handlers.RespondJSON(w, http.StatusOK, AgentStatus{
				AgentID: agent.ID,
				Status:  string(entry.Status),
				Log:     &entry,
			})
			return
		}
	}

	entry, err := h.logs.Latest(r.Context(), agent.ID)
	switch {
	case err == nil:
		handlers.RespondJSON(w, http.StatusOK, AgentStatus{
			AgentID: agent.ID,
			Status:  string(entry.Status),
			Log:     entry,
		})
	case errors.Is(err, logs.ErrNotFound):
		handlers.RespondJSON(w, http.StatusOK, AgentStatus{
			AgentID: agent.ID,
			Status:  StatusIdle,
		})
	default:
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
	}
}

// Trigger handles POST /api/agents/{id}/trigger to dispatch the agent's
// webhook. The request body may carry a payload override; an empty body
// uses the default trigger envelope.
func (h *Handler) Trigger(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	agent, ok := h.reg.Get(id)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, fmt.Errorf("%w: %s", ErrNotFound, id))
		return
	}

	var req TriggerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.dispatcher.Trigger(r.Context(), agent, req.Payload); err != nil {
		handlers.RespondError(w, h.logger, webhooks.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "triggered", "agent_id": agent.ID})
}
