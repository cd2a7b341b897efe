package main

import (
	"net/http"

	"github.com/bremenlabs/agentops/internal/configs"
	"github.com/bremenlabs/agentops/internal/logs"
	"github.com/bremenlabs/agentops/internal/metrics"
	"github.com/bremenlabs/agentops/internal/registry"
	"github.com/bremenlabs/agentops/internal/webhooks"
	"github.com/bremenlabs/agentops/pkg/middleware"
	"github.com/bremenlabs/agentops/pkg/routes"
)

// routes composes all HTTP endpoints behind the shared middleware.
func (app *Application) routes() http.Handler {
	r := routes.NewRouter()

	agentHandler := registry.NewHandler(app.registry, app.dispatcher, app.logs, app.cache, app.logger)
	r.RegisterGroup(agentHandler.Routes())

	configHandler := configs.NewHandler(app.configs, app.registry, app.logger)
	r.RegisterGroup(configHandler.Routes())

	logHandler := logs.NewHandler(app.logs, app.logger)
	r.RegisterGroup(logHandler.Routes())

	metricHandler := metrics.NewHandler(app.metrics, app.logger)
	r.RegisterGroup(metricHandler.Routes())

	webhookHandler := webhooks.NewHandler(app.dispatcher, app.logger)
	r.RegisterGroup(webhookHandler.Routes())

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})
	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: app.handleReadinessCheck,
	})

	cors := middleware.CORS(middleware.CORSPolicy{
		Origins:     app.config.CORS.Origins,
		Methods:     app.config.CORS.Methods,
		Headers:     app.config.CORS.Headers,
		Credentials: app.config.CORS.Credentials,
	})
	limitBody := middleware.LimitBody(app.config.Server.MaxBodyBytes())
	trimSlash := middleware.TrimSlash()

	return cors(limitBody(trimSlash(r.Build())))
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReadinessCheck verifies the table store is reachable.
func (app *Application) handleReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if err := app.db.PingContext(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
