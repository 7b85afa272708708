// internal/app/features/gallery/handler.go
package gallery

import (
	"context"
	"net/http"
	"strings"

	gallerystore "github.com/sevasetu/sevahub/internal/app/store/gallery"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/imagehost"
	"github.com/sevasetu/sevahub/internal/app/system/paging"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// galleryFolder is where hosted gallery images live on the image host.
const galleryFolder = "gallery"

// Handler is the feature-level entry point for the public image gallery.
type Handler struct {
	Store  *gallerystore.Store
	Images imagehost.Uploader
	Log    *zap.Logger
}

// NewHandler constructs a gallery handler.
func NewHandler(store *gallerystore.Store, images imagehost.Uploader, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Images: images, Log: logger}
}

// ServeList handles GET /gallery (public, optional ?category= filter).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.Parse(r)
	category := query.Get(r, "category")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.Store.List(ctx, category, page.Skip(), page.Limit64())
	if err != nil {
		h.Log.Error("list gallery failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"items": rows,
		"meta":  page.MetaFor(total),
	})
}

// createRequest is the JSON body for POST /gallery. The image arrives as a
// base64 data URI and is pushed to the image host before the record is
// written.
type createRequest struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	Category string `json:"category,omitempty"`
	WorkID   string `json:"work_id,omitempty"`
}

// HandleCreate handles POST /gallery (admin).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}
	if !imagehost.ValidDataURI(req.Image) {
		httpjson.Error(w, http.StatusBadRequest, imagehost.ErrBadImage.Error())
		return
	}

	var workID *primitive.ObjectID
	if req.WorkID != "" {
		id, err := primitive.ObjectIDFromHex(req.WorkID)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid work id")
			return
		}
		workID = &id
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	url, err := h.Images.Upload(ctx, req.Image, galleryFolder)
	if err != nil {
		if err == imagehost.ErrBadImage {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("gallery image upload failed", zap.Error(err))
		httpjson.Error(w, http.StatusBadGateway, "image host unavailable")
		return
	}

	item, err := h.Store.Create(ctx, models.GalleryItem{
		Title:    req.Title,
		ImageURL: url,
		Category: req.Category,
		WorkID:   workID,
	})
	if err != nil {
		h.Log.Error("create gallery item failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, item)
}

// HandleDelete handles DELETE /gallery/{id} (admin).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid gallery item id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if err == gallerystore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("delete gallery item failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"message": "Gallery item deleted"})
}
