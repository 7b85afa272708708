// internal/app/features/payment/routes.go
package payment

import "github.com/go-chi/chi/v5"

// Routes mounts the payment endpoints (typically under "/payment" from
// bootstrap). Both are public: the donor has not signed in.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/create-order", h.HandleCreateOrder)
	r.Post("/verify", h.HandleVerify)
	return r
}
