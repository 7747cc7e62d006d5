package http

import (
	"net/http"

	"github.com/MKhiriev/gumi-collection/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/session", h.getSession)

		r.Get("/api/items", h.getItems)
		r.Delete("/api/items", h.deleteAllItems)
		r.Get("/api/items/export", h.exportItems)
		r.Get("/api/items/template", h.getTemplate)
		r.Get("/api/items/{id}", h.getItem)
		r.With(h.checkHash).Put("/api/items", h.upsertItem)
		r.With(h.checkHash).Patch("/api/items/{id}", h.patchItem)

		r.Get("/api/profile", h.getProfile)
		r.With(h.checkHash).Put("/api/profile", h.upsertProfile)

		r.Get("/api/rpc/filters", h.getFilters)
		r.Get("/api/rpc/stats", h.getStats)

		r.Post("/api/images", h.uploadImage)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withCORS allows the configured browser origins. With no origins set the
// handler is a pass-through.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	if len(h.corsOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.New(cors.Options{
		AllowedOrigins: h.corsOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", utils.HashHeader, traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader, "Content-Disposition"},
		AllowCredentials: true,
	}).Handler
}
