// internal/app/features/settings/routes.go
package settings

import (
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the settings endpoints under the base path (typically
// "/settings" from bootstrap).
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeGet)

	r.Group(func(pr chi.Router) {
		pr.Use(am.RequireSignedIn)
		pr.Use(am.RequireRole("admin"))

		pr.Put("/", h.HandleUpdate)
	})

	return r
}
