package metrics

import (
	"log/slog"
	"net/http"

	"github.com/bremenlabs/agentops/pkg/handlers"
	"github.com/bremenlabs/agentops/pkg/pagination"
	"github.com/bremenlabs/agentops/pkg/routes"
)

// MaxLimit caps the number of days a single request may ask for.
const MaxLimit = 365

// Handler provides HTTP handlers for the business metrics series.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a metrics HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group for metrics endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/metrics",
		Description: "Daily business metrics",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Series},
		},
	}
}

// Series handles GET /api/metrics to return the daily series oldest
// first. The response's source field distinguishes live data from the
// generated fallback.
func (h *Handler) Series(w http.ResponseWriter, r *http.Request) {
	limit := pagination.Limit(r.URL.Query(), DefaultLimit, MaxLimit)

	series, err := h.sys.Series(r.Context(), limit)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, series)
}
