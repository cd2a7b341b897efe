package webhooks

import (
	"log/slog"
	"net/http"

	"github.com/bremenlabs/agentops/pkg/handlers"
	"github.com/bremenlabs/agentops/pkg/routes"
)

// Handler provides HTTP handlers for webhook infrastructure checks.
type Handler struct {
	dispatcher *Dispatcher
	logger     *slog.Logger
}

// NewHandler creates a webhooks HTTP handler.
func NewHandler(dispatcher *Dispatcher, logger *slog.Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Routes returns the route group for webhook endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/webhooks",
		Description: "Webhook infrastructure",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/connectivity", Handler: h.Connectivity},
		},
	}
}

// Connectivity handles GET /api/webhooks/connectivity.
func (h *Handler) Connectivity(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.dispatcher.Connectivity(r.Context()))
}
