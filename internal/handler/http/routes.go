package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post(adapter.LoginPath, h.login)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/version/info", h.getServerInfo)
	})

	// routes for authenticated peers
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.checkHash).Post(adapter.IngestPath, h.ingest)
		r.Get("/api/sync/stats", h.getSyncStatistics)
	})

	router.MethodNotAllowed(notFoundOnWrongMethod)

	return router
}
