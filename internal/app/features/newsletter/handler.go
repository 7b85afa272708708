// internal/app/features/newsletter/handler.go
package newsletter

import (
	newsletterstore "github.com/sevasetu/sevahub/internal/app/store/newsletters"
	subscriberstore "github.com/sevasetu/sevahub/internal/app/store/subscribers"
	"github.com/sevasetu/sevahub/internal/app/system/mailer"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the newsletter: public
// subscribe/unsubscribe plus admin dispatch and history.
type Handler struct {
	Subscribers *subscriberstore.Store
	History     *newsletterstore.Store
	Mail        mailer.Sender
	SiteName    string
	Log         *zap.Logger
}

// NewHandler constructs a newsletter handler.
func NewHandler(subs *subscriberstore.Store, history *newsletterstore.Store, mail mailer.Sender, siteName string, logger *zap.Logger) *Handler {
	return &Handler{
		Subscribers: subs,
		History:     history,
		Mail:        mail,
		SiteName:    siteName,
		Log:         logger,
	}
}
