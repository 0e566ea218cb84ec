package handlers

import (
	"net/http"

	"TaskTrackerService/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers the task endpoints, wrapped with m, on a chi router.
// /metrics is served from gatherer when it is not nil.
func NewRouter(h *TaskHandler, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", m.Wrap("/", h.IndexHandler))
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", m.Wrap("/tasks", h.ListTasksHandler))
		r.Post("/", m.Wrap("/tasks", h.CreateTaskHandler))
		r.Get("/{id}", m.Wrap("/tasks/{id}", h.GetTaskHandler))
		r.Put("/{id}", m.Wrap("/tasks/{id}", h.UpdateTaskHandler))
		r.Delete("/{id}", m.Wrap("/tasks/{id}", h.DeleteTaskHandler))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}
