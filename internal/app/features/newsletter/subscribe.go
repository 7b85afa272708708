// internal/app/features/newsletter/subscribe.go
package newsletter

import (
	"context"
	"net/http"
	"strings"

	subscriberstore "github.com/sevasetu/sevahub/internal/app/store/subscribers"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/paging"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type emailRequest struct {
	Email string `json:"email"`
}

func (req *emailRequest) validate(w http.ResponseWriter) bool {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		httpjson.Error(w, http.StatusBadRequest, "a valid email address is required")
		return false
	}
	return true
}

// HandleSubscribe handles POST /newsletter/subscribe.
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.validate(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sub, err := h.Subscribers.Subscribe(ctx, req.Email)
	if err != nil {
		if err == subscriberstore.ErrAlreadySubscribed {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("subscribe failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"message":    "Subscribed to the newsletter",
		"subscriber": sub,
	})
}

// HandleUnsubscribe handles POST /newsletter/unsubscribe.
func (h *Handler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.validate(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Subscribers.Unsubscribe(ctx, req.Email); err != nil {
		if err == subscriberstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("unsubscribe failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Unsubscribed from the newsletter",
	})
}

// ServeSubscribers handles GET /newsletter/subscribers (admin).
func (h *Handler) ServeSubscribers(w http.ResponseWriter, r *http.Request) {
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.Subscribers.List(ctx, page.Skip(), page.Limit64())
	if err != nil {
		h.Log.Error("list subscribers failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"subscribers": rows,
		"meta":        page.MetaFor(total),
	})
}
