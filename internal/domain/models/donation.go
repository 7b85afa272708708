// internal/domain/models/donation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation statuses.
const (
	DonationPending   = "pending"
	DonationCompleted = "completed"
	DonationFailed    = "failed"
)

// Defaults applied when a direct donation request omits donor fields.
const (
	DefaultDonorName  = "Anonymous"
	DefaultDonorEmail = "anonymous@example.com"
)

// Donation is a monetary contribution record. It is created either directly
// (manual/offline recording, status "pending") or through the verified-payment
// path (status "completed" with the gateway payment id as TransactionID).
//
// Donations are never deleted by any exposed operation. UserID is a soft
// reference: donations are matched to a user account by donor email at read
// time, not by an enforced foreign key.
type Donation struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Amount        float64             `bson:"amount" json:"amount"`
	DonorName     string              `bson:"donor_name" json:"donor_name"`
	DonorEmail    string              `bson:"donor_email" json:"donor_email"`
	DonorPhone    string              `bson:"donor_phone,omitempty" json:"donor_phone,omitempty"`
	UserID        *primitive.ObjectID `bson:"user_id,omitempty" json:"user_id,omitempty"`
	PaymentMethod string              `bson:"payment_method,omitempty" json:"payment_method,omitempty"`

	// TransactionID is the gateway payment id for verified payments.
	// A unique sparse index makes payment verification idempotent.
	TransactionID string `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`

	Status         string `bson:"status" json:"status"` // pending | completed | failed
	CertificateURL string `bson:"certificate_url,omitempty" json:"certificate_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsValidDonationStatus reports whether s is a known donation status.
func IsValidDonationStatus(s string) bool {
	switch s {
	case DonationPending, DonationCompleted, DonationFailed:
		return true
	}
	return false
}
