// internal/app/features/contact/routes.go
package contact

import (
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the contact endpoints under the base path (typically
// "/contact" from bootstrap).
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()

	// Public contact form.
	r.Post("/", h.HandleCreate)

	// Admin inbox.
	r.Group(func(pr chi.Router) {
		pr.Use(am.RequireSignedIn)
		pr.Use(am.RequireRole("admin"))

		pr.Get("/", h.ServeList)
		pr.Put("/{id}/status", h.HandleUpdateStatus)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
