package api

import (
	"location-weather-service/internal/api/handlers"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// NewRouter wires HTTP handlers with the workflow and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(workflow handlers.Workflow, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	stateHandler := &handlers.StateHandler{Workflow: workflow}

	r.Get("/health", handlers.Health)
	r.Get("/state", stateHandler.Get)
	r.Post("/search", stateHandler.Search)
	r.Handle("/metrics", promhttp.Handler())

	r.MethodNotAllowed(handlers.MethodNotAllowed)
	r.NotFound(handlers.NotFound)

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})

	return c.Handler(r)
}
