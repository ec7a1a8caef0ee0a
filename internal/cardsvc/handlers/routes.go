package handlers

import (
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	// registered first so mounted subrouters inherit the page-style 404
	r.NotFound(h.NotFound)

	r.Get("/", h.Index)
	r.Post("/create", h.CreateCard)

	r.Route("/card/{cardID}", func(r chi.Router) {
		r.Get("/", h.ShowCard)
		r.Get("/qr.png", h.CardQR)
		r.Get("/download", h.DownloadCard)
		r.Get("/contact.vcf", h.CardVCard)
	})

	r.Get("/health", h.HealthHandler)
}
