package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bremenlabs/agentops/internal/config"
	"github.com/bremenlabs/agentops/internal/configs"
	"github.com/bremenlabs/agentops/internal/database"
	"github.com/bremenlabs/agentops/internal/logs"
	"github.com/bremenlabs/agentops/internal/metrics"
	"github.com/bremenlabs/agentops/internal/registry"
	"github.com/bremenlabs/agentops/internal/status"
	"github.com/bremenlabs/agentops/internal/webhooks"
	"github.com/bremenlabs/agentops/pkg/logging"
)

// Application wires the domain systems behind the HTTP surface.
type Application struct {
	config     *config.Config
	logger     *slog.Logger
	db         *sql.DB
	registry   *registry.Registry
	configs    configs.System
	logs       logs.System
	metrics    metrics.System
	dispatcher *webhooks.Dispatcher
	cache      *status.Cache
}

func main() {
	bootstrap := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		bootstrap.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(&cfg.Logging)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db, logger); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	reg, err := registry.New()
	if err != nil {
		logger.Error("invalid agent catalog", "error", err)
		os.Exit(1)
	}

	logSys := logs.New(db, logger)
	dispatcher := webhooks.New(nil, &cfg.Webhooks, logger)
	cache := status.NewCache(logSys, cfg.Polling.StatusIntervalDuration(), logger)

	app := &Application{
		config:     cfg,
		logger:     logger,
		db:         db,
		registry:   reg,
		configs:    configs.New(db, logger),
		logs:       logSys,
		metrics:    metrics.New(db, logger, metrics.DefaultSampler()),
		dispatcher: dispatcher,
		cache:      cache,
	}

	pollCtx, stopPolling := context.WithCancel(context.Background())
	defer stopPolling()
	go cache.Run(pollCtx)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.routes(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")
		stopPolling()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr)

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	if err := <-shutdownError; err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
