package gallerystore

import (
	"context"
	"errors"
	"time"

	"github.com/sevasetu/sevahub/internal/app/system/normalize"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no gallery item matches the given id.
var ErrNotFound = errors.New("gallery item not found")

// Store provides access to the gallery_items collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new gallery store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("gallery_items")}
}

// Create inserts a gallery item. The image must already be hosted; ImageURL
// is required.
func (s *Store) Create(ctx context.Context, g models.GalleryItem) (models.GalleryItem, error) {
	if g.ImageURL == "" {
		return models.GalleryItem{}, errors.New("image URL is required")
	}

	g.ID = primitive.NewObjectID()
	g.Title = normalize.Name(g.Title)
	g.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.GalleryItem{}, err
	}
	return g, nil
}

// List returns gallery items newest-first with skip/limit pagination plus a
// total count. An optional category filters the list.
func (s *Store) List(ctx context.Context, category string, skip, limit int64) ([]models.GalleryItem, int64, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	find := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.GalleryItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Delete removes a gallery item. The hosted image is left in place; the
// image host is the system of record for binaries.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
