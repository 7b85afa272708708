// internal/app/features/donations/name.go
package donations

import (
	"context"
	"net/http"
	"strings"

	donationstore "github.com/sevasetu/sevahub/internal/app/store/donations"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/normalize"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// nameRequest is the JSON body for PUT /donations/{id}/name. The donor email
// is the ownership proof: it must match the email on the donation record.
type nameRequest struct {
	DonorName  string `json:"donor_name"`
	DonorEmail string `json:"donor_email"`
}

// HandleUpdateName handles PUT /donations/{id}/name: a post-donation name
// correction, used when an anonymous donor wants a named certificate.
// The caller must present the donor email recorded on the donation; a
// mismatch is rejected with 403.
func (h *Handler) HandleUpdateName(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req nameRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.DonorName) == "" {
		httpjson.Error(w, http.StatusBadRequest, "donor name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if err == donationstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("load donation for rename failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	if normalize.Email(req.DonorEmail) != d.DonorEmail {
		httpjson.Error(w, http.StatusForbidden, "donor email does not match this donation")
		return
	}

	if err := h.Store.UpdateDonorName(ctx, id, req.DonorName); err != nil {
		h.Log.Error("update donor name failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Donor name updated",
	})
}
