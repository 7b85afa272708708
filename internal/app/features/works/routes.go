// internal/app/features/works/routes.go
package works

import (
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the works endpoints under the base path (typically
// "/works" from bootstrap).
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()

	// Public reads. Admin sessions see drafts too; LoadUser has already
	// populated the context by the time these run.
	r.Get("/", h.ServeList)
	r.Get("/{slug}", h.ServeBySlug)

	// Admin writes.
	r.Group(func(pr chi.Router) {
		pr.Use(am.RequireSignedIn)
		pr.Use(am.RequireRole("admin"))

		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
