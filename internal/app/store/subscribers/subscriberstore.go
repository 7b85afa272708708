package subscriberstore

import (
	"context"
	"errors"
	"time"

	"github.com/sevasetu/sevahub/internal/app/system/normalize"
	"github.com/sevasetu/sevahub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrAlreadySubscribed is returned when the email is already an active subscriber.
	ErrAlreadySubscribed = errors.New("this email is already subscribed")

	// ErrNotFound is returned when no subscriber matches the given email.
	ErrNotFound = errors.New("subscriber not found")
)

// Store provides access to the subscribers collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new subscriber store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("subscribers")}
}

// Subscribe adds an email to the newsletter. Subscribing an email that is
// already active is an error; re-subscribing an inactive email reactivates
// the existing document.
func (s *Store) Subscribe(ctx context.Context, email string) (models.Subscriber, error) {
	email = normalize.Email(email)

	var existing models.Subscriber
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	switch {
	case err == nil:
		if existing.Active {
			return models.Subscriber{}, ErrAlreadySubscribed
		}
		// Reactivate.
		now := time.Now().UTC()
		_, err := s.c.UpdateOne(ctx,
			bson.M{"_id": existing.ID},
			bson.M{"$set": bson.M{"active": true, "subscribed_at": now}})
		if err != nil {
			return models.Subscriber{}, err
		}
		existing.Active = true
		existing.SubscribedAt = now
		return existing, nil
	case err == mongo.ErrNoDocuments:
		sub := models.Subscriber{
			ID:           primitive.NewObjectID(),
			Email:        email,
			Active:       true,
			SubscribedAt: time.Now().UTC(),
		}
		if _, err := s.c.InsertOne(ctx, sub); err != nil {
			// Concurrent subscribe of the same email.
			if wafflemongo.IsDup(err) {
				return models.Subscriber{}, ErrAlreadySubscribed
			}
			return models.Subscriber{}, err
		}
		return sub, nil
	default:
		return models.Subscriber{}, err
	}
}

// Unsubscribe marks a subscriber inactive. The record is kept so dispatch
// history and re-subscribes stay consistent.
func (s *Store) Unsubscribe(ctx context.Context, email string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": normalize.Email(email)},
		bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListActive returns every active subscriber. Used by newsletter dispatch.
func (s *Store) ListActive(ctx context.Context) ([]models.Subscriber, error) {
	cur, err := s.c.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Subscriber
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns subscribers newest-first with skip/limit pagination plus a
// total count.
func (s *Store) List(ctx context.Context, skip, limit int64) ([]models.Subscriber, int64, error) {
	total, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	find := options.Find().
		SetSort(bson.D{{Key: "subscribed_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.Subscriber
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
