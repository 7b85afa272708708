// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"net/http"
	"strings"

	contactstore "github.com/sevasetu/sevahub/internal/app/store/contacts"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/paging"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for contact-form messages.
type Handler struct {
	Store *contactstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a contact handler.
func NewHandler(store *contactstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// createRequest is the JSON body for POST /contact.
type createRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// HandleCreate handles POST /contact (public).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
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
	case strings.TrimSpace(req.Message) == "":
		httpjson.Error(w, http.StatusBadRequest, "message is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Store.Create(ctx, models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.Log.Error("create contact message failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"message": "Message received",
		"contact": c,
	})
}

// ServeList handles GET /contact (admin).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.Store.List(ctx, page.Skip(), page.Limit64())
	if err != nil {
		h.Log.Error("list contact messages failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"contacts": rows,
		"meta":     page.MetaFor(total),
	})
}

// statusRequest is the JSON body for PUT /contact/{id}/status.
type statusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus handles PUT /contact/{id}/status (admin).
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid contact id")
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
		if err == contactstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"message": "Status updated"})
}

// HandleDelete handles DELETE /contact/{id} (admin).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if err == contactstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("delete contact message failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"message": "Message deleted"})
}
