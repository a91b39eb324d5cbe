package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		if h.metrics != nil {
			r.Method("GET", "/metrics", h.metrics.Handler())
		}
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, withRequestMeta)

		r.Post("/api/secrets/", h.createSecret)
		r.Get("/api/secrets/", h.listSecrets)
		r.Get("/api/secrets/{id}", h.getSecret)
		r.Put("/api/secrets/{id}", h.updateSecret)
		r.Delete("/api/secrets/{id}", h.deleteSecret)
		r.Get("/api/secrets/{id}/access", h.decideAccess)
		r.Post("/api/secrets/{id}/reveal", h.revealSecret)
		r.Post("/api/secrets/{id}/copy", h.copySecret)
		r.Get("/api/secrets/{id}/export", h.exportSecret)
		r.Post("/api/secrets/{id}/shares", h.shareSecret)
		r.Delete("/api/secrets/{id}/shares/{userID}", h.unshareSecret)
		r.Get("/api/secrets/{id}/audit", h.auditLog)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
