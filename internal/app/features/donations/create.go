// internal/app/features/donations/create.go
package donations

import (
	"context"
	"net/http"

	donationstore "github.com/sevasetu/sevahub/internal/app/store/donations"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.uber.org/zap"
)

func badID(w http.ResponseWriter) {
	httpjson.Error(w, http.StatusBadRequest, "invalid donation id")
}

// createRequest is the JSON body for POST /donations: a manually recorded
// donation outside the gateway flow (cash, bank transfer).
type createRequest struct {
	Amount        float64 `json:"amount"`
	DonorName     string  `json:"donor_name,omitempty"`
	DonorEmail    string  `json:"donor_email,omitempty"`
	DonorPhone    string  `json:"donor_phone,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

// HandleCreate handles POST /donations. The record starts as "pending";
// only the verified-payment flow produces "completed" donations.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.Store.CreateDirect(ctx, models.Donation{
		Amount:        req.Amount,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		DonorPhone:    req.DonorPhone,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if err == donationstore.ErrBadAmount {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("create donation failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"message":     "Donation recorded",
		"donation_id": d.ID.Hex(),
		"donation":    d,
	})
}
