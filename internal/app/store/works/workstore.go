package workstore

import (
	"context"
	"errors"
	"time"

	"github.com/sevasetu/sevahub/internal/app/system/normalize"
	"github.com/sevasetu/sevahub/internal/app/system/sanitize"
	"github.com/sevasetu/sevahub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrDuplicateSlug is returned when creating a work whose slug already exists.
	ErrDuplicateSlug = errors.New("a work with this slug already exists")

	// ErrNotFound is returned when no work matches the given id or slug.
	ErrNotFound = errors.New("work not found")
)

// Store provides access to the works collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new work store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("works")}
}

// Create inserts a work. The slug is derived from the title when absent and
// rich content is sanitized before the write.
func (s *Store) Create(ctx context.Context, w models.Work) (models.Work, error) {
	w.ID = primitive.NewObjectID()
	w.Title = normalize.Name(w.Title)
	if w.Slug == "" {
		w.Slug = normalize.Slug(w.Title)
	} else {
		w.Slug = normalize.Slug(w.Slug)
	}
	w.Content = sanitize.HTML(w.Content)
	if w.Status == "" {
		w.Status = models.WorkDraft
	}
	if !models.IsValidWorkStatus(w.Status) {
		return models.Work{}, errors.New(`status must be "draft"|"published"`)
	}

	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, w); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Work{}, ErrDuplicateSlug
		}
		return models.Work{}, err
	}
	return w, nil
}

// GetByID loads a work by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Work, error) {
	var w models.Work
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&w); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// GetBySlug loads a work by slug. Public lookups only see published works;
// admin callers pass includeDrafts.
func (s *Store) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*models.Work, error) {
	filter := bson.M{"slug": normalize.Slug(slug)}
	if !includeDrafts {
		filter["status"] = models.WorkPublished
	}

	var w models.Work
	if err := s.c.FindOne(ctx, filter).Decode(&w); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// List returns works newest-first with skip/limit pagination plus a total
// count. publishedOnly restricts the list to published works (the public
// view); an optional category narrows it further.
func (s *Store) List(ctx context.Context, publishedOnly bool, category string, skip, limit int64) ([]models.Work, int64, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["status"] = models.WorkPublished
	}
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

	var out []models.Work
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Update holds the fields that can be changed on an existing work.
type Update struct {
	Title         string
	Description   string
	Content       string
	CoverImageURL string
	Category      string
	Status        string
}

// Update modifies a work in place. Content is re-sanitized; the slug is
// immutable once created so public links stay stable.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) error {
	if !models.IsValidWorkStatus(upd.Status) {
		return errors.New(`status must be "draft"|"published"`)
	}

	set := bson.M{
		"title":           normalize.Name(upd.Title),
		"description":     upd.Description,
		"content":         sanitize.HTML(upd.Content),
		"cover_image_url": upd.CoverImageURL,
		"category":        upd.Category,
		"status":          upd.Status,
		"updated_at":      time.Now().UTC(),
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a work.
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
