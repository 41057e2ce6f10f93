package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", authTokenHeader},
		AllowCredentials: true,
	}))
	router.Use(withGZip)
	router.Use(middleware.Timeout(h.cfg.Server.RequestTimeout))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/admin/login", h.adminLogin)
		r.Get("/api/health", h.health)
	})

	// token-protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth/verify", h.verify)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.adminOnly)
		r.Get("/api/users", h.listUsers)
		r.Put("/api/users/{id}/approve", h.approveUser)
		r.Delete("/api/users/{id}", h.deleteUser)
	})

	// analytics hand-off to the external Dash service
	if h.cfg.Dash.UpstreamURL != "" {
		router.Handle("/dash/*", h.dashProxy())
	}

	return router
}
