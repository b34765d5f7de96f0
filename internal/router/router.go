// Package router sets up all HTTP routes and middleware chains for the
// admin backend.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"renadmin/internal/handlers"
	"renadmin/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(admin *handlers.Admin, corsOrigin string, loginLimiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(corsOrigin))

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/admin", func(r chi.Router) {
		// Login is the only throttled endpoint.
		r.With(loginLimiter.Middleware).Post("/login", admin.Login)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", admin.ListUsers)
			r.Patch("/{id}", admin.UpdateUser)
			r.Delete("/{id}", admin.DeleteUser)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", admin.ListPosts)
			r.Patch("/{id}", admin.UpdatePost)
			r.Delete("/{id}", admin.DeletePost)
		})

		r.Route("/media", func(r chi.Router) {
			r.Get("/", admin.ListMedia)
			r.Delete("/{kind}/{id}", admin.DeleteMedia)
		})

		r.Route("/stories", func(r chi.Router) {
			r.Get("/", admin.ListStories)
			r.Patch("/{id}", admin.UpdateStory)
			r.Delete("/{id}", admin.DeleteStory)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", admin.ListBlogPosts)
			r.Post("/", admin.CreateBlogPost)
			r.Get("/check-slug", admin.CheckBlogSlug)
			r.Get("/{id}", admin.GetBlogPost)
			r.Put("/{id}", admin.UpdateBlogPost)
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
