// internal/app/features/payment/verify.go
package payment

import (
	"context"
	"net/http"

	donationstore "github.com/sevasetu/sevahub/internal/app/store/donations"
	"github.com/sevasetu/sevahub/internal/app/system/gateway"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/mailer"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// verifyRequest is the JSON body for POST /payment/verify: the checkout
// callback fields plus the donor details collected on the donation form.
type verifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`

	Amount     float64 `json:"amount"`
	DonorName  string  `json:"donor_name,omitempty"`
	DonorEmail string  `json:"donor_email,omitempty"`
	DonorPhone string  `json:"donor_phone,omitempty"`

	// UserID optionally links the donation to a signed-in donor's account.
	// The association stays a soft reference; donations are still matched to
	// accounts by email at read time.
	UserID string `json:"user_id,omitempty"`
}

type verifyResponse struct {
	Message    string `json:"message"`
	DonationID string `json:"donation_id"`
}

// HandleVerify handles POST /payment/verify.
//
// The signature must be the gateway's HMAC over "<order_id>|<payment_id>".
// A bad signature is rejected with 400 and no donation is written. A valid
// signature records a completed donation keyed by the payment id; replaying
// the same verified payment returns the existing record instead of creating
// a second one.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		httpjson.Error(w, http.StatusBadRequest, "order id, payment id and signature are required")
		return
	}
	if req.Amount <= 0 {
		httpjson.Error(w, http.StatusBadRequest, "amount must be a positive number")
		return
	}
	var userID *primitive.ObjectID
	if req.UserID != "" {
		oid, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "user_id is not a valid id")
			return
		}
		userID = &oid
	}

	if !gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature, h.KeySecret) {
		h.Log.Warn("payment signature mismatch",
			zap.String("order_id", req.OrderID),
			zap.String("payment_id", req.PaymentID))
		httpjson.Error(w, http.StatusBadRequest, "Invalid payment signature")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	donation, replayed, err := h.Donations.CreateVerified(ctx, models.Donation{
		Amount:        req.Amount,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		DonorPhone:    req.DonorPhone,
		UserID:        userID,
		PaymentMethod: "razorpay",
		TransactionID: req.PaymentID,
	})
	if err != nil {
		if err == donationstore.ErrBadAmount {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("record verified donation failed",
			zap.String("payment_id", req.PaymentID),
			zap.Error(err))
		httpjson.Internal(w)
		return
	}

	if replayed {
		h.Log.Info("verified payment replayed",
			zap.String("payment_id", req.PaymentID),
			zap.String("donation_id", donation.ID.Hex()))
		httpjson.Write(w, http.StatusOK, verifyResponse{
			Message:    "Payment already verified",
			DonationID: donation.ID.Hex(),
		})
		return
	}

	// Receipt delivery must not block or fail the verification response.
	if donation.DonorEmail != models.DefaultDonorEmail {
		receipt := mailer.BuildReceiptEmail(mailer.ReceiptData{
			SiteName:      h.SiteName,
			DonorName:     donation.DonorName,
			Amount:        donation.Amount,
			Currency:      gateway.DefaultCurrency,
			TransactionID: donation.TransactionID,
			DonatedAt:     donation.CreatedAt,
		})
		receipt.To = donation.DonorEmail
		mailer.SendAsync(h.Mail, receipt, h.Log)
	}

	h.Log.Info("payment verified",
		zap.String("payment_id", req.PaymentID),
		zap.String("donation_id", donation.ID.Hex()),
		zap.Float64("amount", donation.Amount))

	httpjson.Write(w, http.StatusOK, verifyResponse{
		Message:    "Payment verified successfully",
		DonationID: donation.ID.Hex(),
	})
}
