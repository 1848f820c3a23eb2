package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskdesk/internal/api"
	apiMiddleware "github.com/phrazzld/taskdesk/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	commandHandler := api.NewCommandHandler(app.commandService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	viewHandler := api.NewViewHandler(app.taskService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/command", commandHandler.ExecuteCommand)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.ListTasks)
			r.Post("/", taskHandler.CreateTask)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", taskHandler.GetTask)
				r.Put("/", taskHandler.UpdateTask)
				r.Delete("/", taskHandler.DeleteTask)
				r.Patch("/complete", taskHandler.CompleteTask)
			})
		})

		r.Get("/calendar", viewHandler.GetCalendar)
		r.Get("/priority-matrix", viewHandler.GetPriorityMatrix)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
