package newsletterstore

import (
	"context"
	"time"

	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the newsletter_history collection: one audit
// record per dispatch.
type Store struct {
	c *mongo.Collection
}

// New creates a new newsletter history store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("newsletter_history")}
}

// Record writes the audit record for one dispatch.
func (s *Store) Record(ctx context.Context, h models.NewsletterHistory) (models.NewsletterHistory, error) {
	h.ID = primitive.NewObjectID()
	if h.SentAt.IsZero() {
		h.SentAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, h); err != nil {
		return models.NewsletterHistory{}, err
	}
	return h, nil
}

// List returns dispatch history newest-first with skip/limit pagination plus
// a total count.
func (s *Store) List(ctx context.Context, skip, limit int64) ([]models.NewsletterHistory, int64, error) {
	total, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	find := options.Find().
		SetSort(bson.D{{Key: "sent_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.NewsletterHistory
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
