// Package router sets up all HTTP routes and middleware chains for the
// catalog API. Read endpoints are open; write endpoints additionally
// pass through the per-IP rate limiter.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"arogya/internal/handlers"
	"arogya/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(categories *handlers.Categories, content *handlers.Content, ratings *handlers.Ratings, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categories.List)
			r.Get("/featured", categories.Featured)
			r.Get("/{slug}", categories.Get)
			r.Get("/{slug}/content", categories.Content)

			// Admin mutations — open like everything else, but rate limited.
			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Post("/", categories.Create)
				r.Put("/{id}", categories.Update)
				r.Delete("/{id}", categories.Delete)
			})
		})

		r.Route("/content", func(r chi.Router) {
			r.Get("/", content.List)
			r.Get("/featured", content.Featured)
			r.Get("/popular", content.Popular)
			r.Get("/recent", content.Recent)
			r.Get("/search", content.Search)
			r.Get("/stats", content.Stats)
			r.Get("/{id}", content.Get)

			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Post("/", content.Create)
				r.Put("/{id}", content.Update)
				r.Patch("/{id}", content.Patch)
				r.Delete("/{id}", content.Delete)
				r.Post("/{id}/increment_view", content.IncrementView)
				r.Post("/{id}/like", content.Like)
				r.Post("/{id}/share", content.Share)
			})
		})

		r.Route("/ratings", func(r chi.Router) {
			r.Get("/", ratings.List)

			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Post("/", ratings.Create)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
