// internal/app/features/account/me.go
package account

import (
	"context"
	"net/http"

	userstore "github.com/sevasetu/sevahub/internal/app/store/users"
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeMe handles GET /auth/me: the signed-in user's profile plus their
// donation history, matched by donor email.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := primitive.ObjectIDFromHex(su.ID)
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == userstore.ErrNotFound {
			// Token outlived the account.
			httpjson.Error(w, http.StatusUnauthorized, "account no longer exists")
			return
		}
		h.Log.Error("load profile failed", zap.String("user_id", su.ID), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	history, err := h.Donations.ListByEmail(ctx, u.Email)
	if err != nil {
		h.Log.Error("load donation history failed", zap.String("user_id", su.ID), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"user":      u,
		"donations": history,
	})
}
