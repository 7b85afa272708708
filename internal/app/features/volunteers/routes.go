// internal/app/features/volunteers/routes.go
package volunteers

import (
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the volunteer endpoints under the base path (typically
// "/volunteers" from bootstrap).
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()

	// Public application form.
	r.Post("/", h.HandleApply)

	// Admin review queue.
	r.Group(func(pr chi.Router) {
		pr.Use(am.RequireSignedIn)
		pr.Use(am.RequireRole("admin"))

		pr.Get("/", h.ServeList)
		pr.Put("/{id}/status", h.HandleUpdateStatus)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
