// internal/app/features/account/login.go
package account

import (
	"context"
	"net/http"

	userstore "github.com/sevasetu/sevahub/internal/app/store/users"
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// loginRequest is the JSON body for POST /auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionUser converts a stored user to the token/session shape.
func sessionUser(u *models.User) *auth.SessionUser {
	return &auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// HandleLogin handles POST /auth/login. Unknown email and wrong password
// return the same 401 so the endpoint does not leak which emails exist.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		httpjson.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == userstore.ErrNotFound {
			httpjson.Error(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.Log.Error("load user for login failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		httpjson.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := h.Auth.Tokens().Issue(sessionUser(u))
	if err != nil {
		h.Log.Error("issue token failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	h.Log.Info("user signed in", zap.String("user_id", u.ID.Hex()))

	httpjson.Write(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  u,
	})
}
