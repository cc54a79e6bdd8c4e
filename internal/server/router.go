package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"resistor-api/internal/colors"
	"resistor-api/internal/docs"
	"resistor-api/internal/handlers"
	"resistor-api/internal/observability"
	"resistor-api/internal/resistors"
)

// NewRouter wires every endpoint against registry. limiter may be nil, in
// which case the domain routes are not rate limited.
func NewRouter(registry *colors.Registry, limiter *RateLimiter) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(observability.RequestIDMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.MetricsMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(securityHeaders)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	r.Group(func(r chi.Router) {
		r.Use(compress)
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		colors.NewHandler(registry).RegisterRoutes(r)
		resistors.NewHandler(resistors.NewCalculator(registry)).RegisterRoutes(r)
		docs.NewHandler(docs.New(registry.Names())).RegisterRoutes(r)
	})

	return r
}
