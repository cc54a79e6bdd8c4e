package colors

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the color endpoints under the /colors prefix.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/colors", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{name}", h.Get)
	})
}
