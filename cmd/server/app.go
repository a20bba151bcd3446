package main

import (
	"context"
	"fmt"
	"log/slog"

	apiMiddleware "github.com/phrazzld/task-tracker/internal/api/middleware"
	"github.com/phrazzld/task-tracker/internal/config"
	"github.com/phrazzld/task-tracker/internal/platform/database"
	"github.com/phrazzld/task-tracker/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	gateway *database.Gateway

	taskService service.TaskService
	metrics     *apiMiddleware.Metrics
}

// newApplication opens the database, makes sure the schema exists and wires
// the services. Failing to open or initialize the database is fatal.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	gateway, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := gateway.InitializeSchema(ctx); err != nil {
		_ = gateway.Close()
		return nil, err
	}

	taskService, err := service.NewTaskService(gateway, gateway.TaskStore, logger)
	if err != nil {
		_ = gateway.Close()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Info("application initialized successfully")
	return &application{
		config:      cfg,
		logger:      logger,
		gateway:     gateway,
		taskService: taskService,
		metrics:     apiMiddleware.NewMetrics(registry),
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.gateway != nil {
		if err := app.gateway.Close(); err != nil {
			app.logger.Error("error closing database", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
