package contactstore

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

// ErrNotFound is returned when no contact matches the given id.
var ErrNotFound = errors.New("contact message not found")

// Store provides access to the contacts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new contact store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contacts")}
}

// Create inserts a contact-form message with status "new".
func (s *Store) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	c.ID = primitive.NewObjectID()
	c.Name = sanitize.Text(normalize.Name(c.Name))
	c.Email = normalize.Email(c.Email)
	c.Subject = sanitize.Text(c.Subject)
	c.Message = sanitize.Text(c.Message)
	c.Status = models.ContactNew
	c.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Contact{}, err
	}
	return c, nil
}

// GetByID loads a contact message by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var c models.Contact
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns contact messages newest-first with skip/limit pagination plus
// a total count.
func (s *Store) List(ctx context.Context, skip, limit int64) ([]models.Contact, int64, error) {
	total, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	find := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.Contact
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// UpdateStatus moves a contact message through its workflow
// (new → read → responded).
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !models.IsValidContactStatus(status) {
		return errors.New(`status must be "new"|"read"|"responded"`)
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

// Delete removes a contact message.
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
