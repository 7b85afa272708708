// internal/app/features/donations/routes.go
package donations

import (
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the donation endpoints under the base path (typically
// "/donations" from bootstrap).
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()

	// Public: donors are not required to have an account.
	r.Post("/", h.HandleCreate)
	r.Put("/{id}/name", h.HandleUpdateName)
	r.Get("/{id}/certificate", h.ServeCertificate)
	r.Post("/{id}/certificate", h.HandleUploadCertificate)

	// Admin: listing and inspecting donation records.
	r.Group(func(pr chi.Router) {
		pr.Use(am.RequireSignedIn)
		pr.Use(am.RequireRole("admin"))

		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeGet)
	})

	return r
}
