// internal/app/features/donations/certificate.go
package donations

import (
	"context"
	"net/http"

	donationstore "github.com/sevasetu/sevahub/internal/app/store/donations"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/imagehost"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.uber.org/zap"
)

// certificateFolder is where hosted certificate images live on the image host.
const certificateFolder = "certificates"

// certificateRequest is the JSON body for POST /donations/{id}/certificate.
// The client renders the certificate and submits it as a base64 data URI;
// the server only stores it.
type certificateRequest struct {
	Image string `json:"image"`
}

// HandleUploadCertificate handles POST /donations/{id}/certificate.
// Certificates only exist for completed donations.
func (h *Handler) HandleUploadCertificate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req certificateRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if !imagehost.ValidDataURI(req.Image) {
		httpjson.Error(w, http.StatusBadRequest, imagehost.ErrBadImage.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	d, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if err == donationstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("load donation for certificate failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if d.Status != models.DonationCompleted {
		httpjson.Error(w, http.StatusBadRequest, "certificates are only issued for completed donations")
		return
	}

	url, err := h.Images.Upload(ctx, req.Image, certificateFolder)
	if err != nil {
		if err == imagehost.ErrBadImage {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("certificate upload failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusBadGateway, "image host unavailable")
		return
	}

	if err := h.Store.SetCertificateURL(ctx, id, url); err != nil {
		h.Log.Error("save certificate url failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message":         "Certificate uploaded",
		"certificate_url": url,
	})
}

// ServeCertificate handles GET /donations/{id}/certificate. It returns the
// donor-safe fields the client needs to render a certificate, plus the hosted
// image URL once one has been uploaded.
func (h *Handler) ServeCertificate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
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
		h.Log.Error("get certificate failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if d.Status != models.DonationCompleted {
		httpjson.Error(w, http.StatusBadRequest, "certificates are only issued for completed donations")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"donor_name":      d.DonorName,
		"amount":          d.Amount,
		"date":            d.CreatedAt,
		"transaction_id":  d.TransactionID,
		"certificate_url": d.CertificateURL,
	})
}
