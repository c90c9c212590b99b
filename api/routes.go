package api

import (
	"time"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires all resources under /api. Mutating admin endpoints run
// behind token authentication; reads and the public guestbook/contact writes
// do not.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	health := newHealthHandler(startupTime)

	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", health.health())

		// Public endpoints
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/guestbook", handlers.guestbookHandler.listEntries())
		r.Post("/guestbook", handlers.guestbookHandler.createEntry())
		r.Get("/config/resume", handlers.configHandler.getResume())
		r.Post("/contact", handlers.contactHandler.sendMessage())
		r.Post("/admin/login", handlers.authHandler.login())

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects", handlers.projectHandler.updateProject())
			r.Delete("/projects", handlers.projectHandler.deleteProject())

			r.Delete("/guestbook", handlers.guestbookHandler.deleteEntry())

			r.Post("/config/resume", handlers.configHandler.setResume())

			r.Post("/uploads", handlers.uploadHandler.uploadImage())

			r.Get("/admin/session", handlers.authHandler.session())
		})
	})
}
