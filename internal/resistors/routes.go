package resistors

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the decoding endpoints under the /resistors prefix.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/resistors", func(r chi.Router) {
		r.Post("/value-from-bands", h.ValueFromBody)
		r.Get("/value-from-bands", h.ValueFromQuery)
	})
}
