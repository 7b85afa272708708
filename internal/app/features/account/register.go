// internal/app/features/account/register.go
package account

import (
	"context"
	"net/http"
	"strings"

	userstore "github.com/sevasetu/sevahub/internal/app/store/users"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 8

// registerRequest is the JSON body for POST /auth/register.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// HandleRegister handles POST /auth/register. New accounts always get the
// "user" role; admins are promoted through the users feature.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	switch {
	case req.Name == "":
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	case req.Email == "" || !strings.Contains(req.Email, "@"):
		httpjson.Error(w, http.StatusBadRequest, "a valid email address is required")
		return
	case len(req.Password) < minPasswordLen:
		httpjson.Error(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("hash password failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.Create(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         models.RoleUser,
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			httpjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.Log.Error("create user failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	token, err := h.Auth.Tokens().Issue(sessionUser(&u))
	if err != nil {
		h.Log.Error("issue token failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"message": "Account created",
		"token":   token,
		"user":    u,
	})
}
