// internal/app/features/settings/handler.go
package settings

import (
	"context"
	"net/http"
	"strings"

	settingsstore "github.com/sevasetu/sevahub/internal/app/store/settings"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for site settings.
type Handler struct {
	Store *settingsstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a settings handler.
func NewHandler(store *settingsstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// ServeGet handles GET /settings (public; the frontend needs the site name
// and contact details to render).
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	s, err := h.Store.Get(ctx)
	if err != nil {
		h.Log.Error("load settings failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, s)
}

// HandleUpdate handles PUT /settings (admin). The whole document is
// replaced; the body carries every field.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.SiteSettings
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.SiteName) == "" {
		httpjson.Error(w, http.StatusBadRequest, "site name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Save(ctx, req); err != nil {
		h.Log.Error("save settings failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	s, err := h.Store.Get(ctx)
	if err != nil {
		h.Log.Error("reload settings failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, s)
}
