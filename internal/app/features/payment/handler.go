// internal/app/features/payment/handler.go
package payment

import (
	"go.uber.org/zap"

	donationstore "github.com/sevasetu/sevahub/internal/app/store/donations"
	"github.com/sevasetu/sevahub/internal/app/system/gateway"
	"github.com/sevasetu/sevahub/internal/app/system/mailer"
)

// Handler is the feature-level entry point for the payment flow: order
// creation before checkout and signature verification afterwards.
type Handler struct {
	Gateway   gateway.OrderCreator
	KeyID     string // public key id, embedded in the checkout
	KeySecret string // shared secret used to verify callback signatures
	Donations *donationstore.Store
	Mail      mailer.Sender
	SiteName  string
	Log       *zap.Logger
}

// NewHandler constructs a payment handler.
func NewHandler(gw gateway.OrderCreator, keyID, keySecret string, donations *donationstore.Store, mail mailer.Sender, siteName string, logger *zap.Logger) *Handler {
	return &Handler{
		Gateway:   gw,
		KeyID:     keyID,
		KeySecret: keySecret,
		Donations: donations,
		Mail:      mail,
		SiteName:  siteName,
		Log:       logger,
	}
}
