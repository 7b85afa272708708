// internal/app/features/newsletter/routes.go
package newsletter

import (
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the newsletter endpoints under the base path (typically
// "/newsletter" from bootstrap).
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()

	// Public
	r.Post("/subscribe", h.HandleSubscribe)
	r.Post("/unsubscribe", h.HandleUnsubscribe)

	// Admin
	r.Group(func(pr chi.Router) {
		pr.Use(am.RequireSignedIn)
		pr.Use(am.RequireRole("admin"))

		pr.Get("/subscribers", h.ServeSubscribers)
		pr.Post("/send", h.HandleSend)
		pr.Get("/history", h.ServeHistory)
	})

	return r
}
