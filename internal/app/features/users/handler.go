// internal/app/features/users/handler.go
package users

import (
	"context"
	"net/http"

	userstore "github.com/sevasetu/sevahub/internal/app/store/users"
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/paging"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for admin user management.
type Handler struct {
	Store *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a users handler.
func NewHandler(store *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// ServeList handles GET /users (admin).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.Store.List(ctx, page.Skip(), page.Limit64())
	if err != nil {
		h.Log.Error("list users failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"users": rows,
		"meta":  page.MetaFor(total),
	})
}

// roleRequest is the JSON body for PUT /users/{id}/role.
type roleRequest struct {
	Role string `json:"role"`
}

// HandleUpdateRole handles PUT /users/{id}/role (admin). An admin cannot
// change their own role; that would allow locking every admin out.
func (h *Handler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if su, ok := auth.CurrentUser(r); ok && su.ID == id.Hex() {
		httpjson.Error(w, http.StatusBadRequest, "you cannot change your own role")
		return
	}

	var req roleRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.UpdateRole(ctx, id, req.Role); err != nil {
		switch err {
		case userstore.ErrNotFound:
			httpjson.Error(w, http.StatusNotFound, err.Error())
		default:
			httpjson.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"message": "Role updated"})
}

// HandleDelete handles DELETE /users/{id} (admin). Donations keep their soft
// email reference and survive the account.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if su, ok := auth.CurrentUser(r); ok && su.ID == id.Hex() {
		httpjson.Error(w, http.StatusBadRequest, "you cannot delete your own account")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if err == userstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("delete user failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"message": "User deleted"})
}
