// internal/app/features/donations/list.go
package donations

import (
	"context"
	"net/http"

	donationstore "github.com/sevasetu/sevahub/internal/app/store/donations"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/paging"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /donations (admin).
// Authorization: RequireRole("admin") middleware in routes.go.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.Store.List(ctx, page.Skip(), page.Limit64())
	if err != nil {
		h.Log.Error("list donations failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"donations": rows,
		"meta":      page.MetaFor(total),
	})
}

// ServeGet handles GET /donations/{id} (admin).
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if err == donationstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("get donation failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, d)
}
