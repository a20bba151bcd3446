package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/task-tracker/internal/api"
	apiMiddleware "github.com/phrazzld/task-tracker/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.metrics.Middleware)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(middleware.Recoverer)

	pageHandler := api.NewPageHandler()
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	r.Get("/", pageHandler.Index)
	r.Get("/add", pageHandler.AddTask)

	// Non-numeric ids fall through to the 404 handler.
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/{id:[0-9]+}", taskHandler.GetTask)
		r.Put("/{id:[0-9]+}", taskHandler.UpdateTask)
		r.Delete("/{id:[0-9]+}", taskHandler.DeleteTask)
	})

	r.Method(http.MethodGet, "/health", api.NewHealthHandler(app.gateway))
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
