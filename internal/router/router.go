// Package router sets up all HTTP routes and middleware chains for the
// Inkpress content API. It organizes routes into a public read group and
// an admin mutation group with appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/handlers"
	"inkpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter may be nil to skip rate limiting
// (tests do this).
func New(public *handlers.Public, admin *handlers.Admin, jwtSecret []byte, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Public reads — no auth, caching disabled so reads always reflect
	// the latest write.
	r.Group(func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Get("/posts", public.ListPosts)
		r.Get("/posts/{id}", public.GetPost)
		r.Get("/categories", public.ListCategories)
	})

	// Admin mutations — bearer credential required on every route.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireBearer(jwtSecret))
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", admin.CreatePost)
			r.Put("/{id}", admin.UpdatePost)
			r.Delete("/{id}", admin.DeletePost)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", admin.CreateCategory)
			r.Put("/{id}", admin.UpdateCategory)
			r.Delete("/{id}", admin.DeleteCategory)
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
