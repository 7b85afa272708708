// internal/app/features/users/routes.go
package users

import (
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user-management endpoints (admin only) under the base
// path (typically "/users" from bootstrap).
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(am.RequireSignedIn)
		pr.Use(am.RequireRole("admin"))

		pr.Get("/", h.ServeList)
		pr.Put("/{id}/role", h.HandleUpdateRole)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
