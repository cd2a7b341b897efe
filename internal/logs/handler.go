package logs

import (
	"log/slog"
	"net/http"

	"github.com/bremenlabs/agentops/pkg/handlers"
	"github.com/bremenlabs/agentops/pkg/pagination"
	"github.com/bremenlabs/agentops/pkg/routes"
)

// MaxLimit caps the number of entries a single request may ask for.
const MaxLimit = 200

// Handler provides HTTP handlers for activity log reads.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a logs HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group for log endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/logs",
		Description: "Agent activity log",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

// List handles GET /api/logs to return recent entries newest first,
// optionally filtered by the agent query parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := pagination.Limit(r.URL.Query(), DefaultLimit, MaxLimit)
	agentID := r.URL.Query().Get("agent")

	results, err := h.sys.List(r.Context(), limit, agentID)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	if results == nil {
		results = []AgentLog{}
	}

	handlers.RespondJSON(w, http.StatusOK, results)
}
