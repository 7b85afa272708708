package volunteerstore

import (
	"context"
	"errors"
	"time"

	"github.com/sevasetu/sevahub/internal/app/system/normalize"
	"github.com/sevasetu/sevahub/internal/app/system/sanitize"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no volunteer application matches the given id.
var ErrNotFound = errors.New("volunteer application not found")

// Store provides access to the volunteers collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new volunteer store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("volunteers")}
}

// Create inserts a volunteer application with status "pending".
func (s *Store) Create(ctx context.Context, v models.Volunteer) (models.Volunteer, error) {
	v.ID = primitive.NewObjectID()
	v.Name = sanitize.Text(normalize.Name(v.Name))
	v.Email = normalize.Email(v.Email)
	v.Interest = sanitize.Text(v.Interest)
	v.Message = sanitize.Text(v.Message)
	v.Status = models.VolunteerPending
	v.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, v); err != nil {
		return models.Volunteer{}, err
	}
	return v, nil
}

// GetByID loads a volunteer application by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Volunteer, error) {
	var v models.Volunteer
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// List returns applications newest-first with skip/limit pagination plus a
// total count. An optional status filters the list.
func (s *Store) List(ctx context.Context, status string, skip, limit int64) ([]models.Volunteer, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
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

	var out []models.Volunteer
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// UpdateStatus approves or rejects an application.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !models.IsValidVolunteerStatus(status) {
		return errors.New(`status must be "pending"|"approved"|"rejected"`)
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a volunteer application.
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
