// internal/app/features/gallery/routes.go
package gallery

import (
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the gallery endpoints under the base path (typically
// "/gallery" from bootstrap).
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()

	// Public gallery.
	r.Get("/", h.ServeList)

	// Admin management.
	r.Group(func(pr chi.Router) {
		pr.Use(am.RequireSignedIn)
		pr.Use(am.RequireRole("admin"))

		pr.Post("/", h.HandleCreate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
