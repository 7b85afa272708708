// internal/app/features/donations/handler.go
package donations

import (
	"net/http"

	donationstore "github.com/sevasetu/sevahub/internal/app/store/donations"
	"github.com/sevasetu/sevahub/internal/app/system/imagehost"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
)

// Handler is the feature-level entry point for donation records.
type Handler struct {
	Store  *donationstore.Store
	Images imagehost.Uploader
	Log    *zap.Logger
}

// NewHandler constructs a donations handler.
func NewHandler(store *donationstore.Store, images imagehost.Uploader, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Images: images,
		Log:    logger,
	}
}

// pathID parses the {id} URL parameter. On failure it writes the 400
// response and returns false.
func pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		badID(w)
		return primitive.NilObjectID, false
	}
	return id, true
}
