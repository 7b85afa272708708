// internal/app/features/account/handler.go
package account

import (
	donationstore "github.com/sevasetu/sevahub/internal/app/store/donations"
	userstore "github.com/sevasetu/sevahub/internal/app/store/users"
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for account registration,
// sign-in and the signed-in profile.
type Handler struct {
	Users     *userstore.Store
	Donations *donationstore.Store
	Auth      *auth.Manager
	Log       *zap.Logger
}

// NewHandler constructs an account handler.
func NewHandler(users *userstore.Store, donations *donationstore.Store, am *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     users,
		Donations: donations,
		Auth:      am,
		Log:       logger,
	}
}
