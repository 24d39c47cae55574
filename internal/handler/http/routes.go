package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// promhttp negotiates its own compression
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version/", h.getServerVersion)
		r.Post("/api/images", h.uploadImage)

		if h.imagesDir != "" {
			r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(h.imagesDir))))
		}

		// server-side rendered pages
		r.Group(func(r chi.Router) {
			r.Use(h.withGraphQL)
			r.Get("/orders", h.ordersPage)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
