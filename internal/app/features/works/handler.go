// internal/app/features/works/handler.go
package works

import (
	"context"
	"net/http"
	"strings"

	workstore "github.com/sevasetu/sevahub/internal/app/store/works"
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/paging"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for works (projects and
// blog-style write-ups).
type Handler struct {
	Store *workstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a works handler.
func NewHandler(store *workstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// isAdmin reports whether the request carries an admin session.
func isAdmin(r *http.Request) bool {
	u, ok := auth.CurrentUser(r)
	return ok && u.Role == models.RoleAdmin
}

// ServeList handles GET /works. The public sees published works only;
// admins see everything. An optional ?category= narrows the list.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.Parse(r)
	category := query.Get(r, "category")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.Store.List(ctx, !isAdmin(r), category, page.Skip(), page.Limit64())
	if err != nil {
		h.Log.Error("list works failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"works": rows,
		"meta":  page.MetaFor(total),
	})
}

// ServeBySlug handles GET /works/{slug}. Drafts are only visible to admins.
func (h *Handler) ServeBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	work, err := h.Store.GetBySlug(ctx, slug, isAdmin(r))
	if err != nil {
		if err == workstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("get work failed", zap.String("slug", slug), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, work)
}

// workRequest is the JSON body for creating or updating a work.
type workRequest struct {
	Title         string `json:"title"`
	Slug          string `json:"slug,omitempty"`
	Description   string `json:"description,omitempty"`
	Content       string `json:"content,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	Category      string `json:"category,omitempty"`
	Status        string `json:"status,omitempty"`
}

// HandleCreate handles POST /works (admin).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req workRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	work, err := h.Store.Create(ctx, models.Work{
		Title:         req.Title,
		Slug:          req.Slug,
		Description:   req.Description,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Category:      req.Category,
		Status:        req.Status,
	})
	if err != nil {
		if err == workstore.ErrDuplicateSlug {
			httpjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	httpjson.Write(w, http.StatusCreated, work)
}

// HandleUpdate handles PUT /works/{id} (admin). The slug is immutable;
// a slug in the body is ignored.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid work id")
		return
	}

	var req workRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Status == "" {
		req.Status = models.WorkDraft
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Store.Update(ctx, id, workstore.Update{
		Title:         req.Title,
		Description:   req.Description,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Category:      req.Category,
		Status:        req.Status,
	})
	if err != nil {
		if err == workstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"message": "Work updated"})
}

// HandleDelete handles DELETE /works/{id} (admin).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid work id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if err == workstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("delete work failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"message": "Work deleted"})
}
