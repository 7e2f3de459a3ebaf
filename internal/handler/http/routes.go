package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withActor)

	router.Method("GET", "/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/auth/login", h.login)

		r.Route("/artefacts", func(r chi.Router) {
			r.Get("/", h.listArtefacts)
			r.Post("/", h.createArtefact)
			r.Get("/stats", h.artefactStats)
			r.Get("/{id}", h.getArtefact)
			r.Patch("/{id}", h.updateArtefact)
			r.Delete("/{id}", h.deleteArtefact)
		})

		r.Route("/relationships", func(r chi.Router) {
			r.Get("/", h.listRelationships)
			r.Post("/", h.createRelationship)
			r.Delete("/{id}", h.deleteRelationship)
		})

		r.Route("/audit-logs", func(r chi.Router) {
			r.Get("/", h.listAuditLogs)
			r.Post("/", h.createAuditLog)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.listSettings)
			r.Post("/", h.upsertSetting)
			r.Post("/bulk", h.bulkUpsertSettings)
			r.Get("/category/{category}", h.listSettingsByCategory)
			r.Get("/{key}", h.getSetting)
			r.Patch("/{key}", h.updateSetting)
			r.Delete("/{key}", h.deleteSetting)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{id}", h.getUser)
			r.Patch("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	return router
}
