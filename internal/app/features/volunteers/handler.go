// internal/app/features/volunteers/handler.go
package volunteers

import (
	"context"
	"net/http"
	"strings"

	volunteerstore "github.com/sevasetu/sevahub/internal/app/store/volunteers"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/paging"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for volunteer applications.
type Handler struct {
	Store *volunteerstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a volunteers handler.
func NewHandler(store *volunteerstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// applyRequest is the JSON body for POST /volunteers.
type applyRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Interest string `json:"interest,omitempty"`
	Message  string `json:"message,omitempty"`
}

// HandleApply handles POST /volunteers (public). Applications start as
// "pending" until an admin approves or rejects them.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	switch {
	case strings.TrimSpace(req.Name) == "":
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	case !strings.Contains(req.Email, "@"):
		httpjson.Error(w, http.StatusBadRequest, "a valid email address is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	v, err := h.Store.Create(ctx, models.Volunteer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Interest: req.Interest,
		Message:  req.Message,
	})
	if err != nil {
		h.Log.Error("create volunteer application failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"message":   "Application received",
		"volunteer": v,
	})
}

// ServeList handles GET /volunteers (admin, optional ?status= filter).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.Parse(r)
	status := query.Get(r, "status")
	if status != "" && !models.IsValidVolunteerStatus(status) {
		httpjson.Error(w, http.StatusBadRequest, `status must be "pending"|"approved"|"rejected"`)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.Store.List(ctx, status, page.Skip(), page.Limit64())
	if err != nil {
		h.Log.Error("list volunteers failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"volunteers": rows,
		"meta":       page.MetaFor(total),
	})
}

// statusRequest is the JSON body for PUT /volunteers/{id}/status.
type statusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus handles PUT /volunteers/{id}/status (admin).
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid volunteer id")
		return
	}

	var req statusRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.UpdateStatus(ctx, id, req.Status); err != nil {
		if err == volunteerstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"message": "Status updated"})
}

// HandleDelete handles DELETE /volunteers/{id} (admin).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid volunteer id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if err == volunteerstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("delete volunteer application failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"message": "Application deleted"})
}
