package donationstore

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
	// ErrBadAmount is returned when a donation amount is missing or not positive.
	ErrBadAmount = errors.New("donation amount must be a positive number")

	// ErrNotFound is returned when no donation matches the given id.
	ErrNotFound = errors.New("donation not found")
)

// Store provides access to the donations collection. Donations are never
// deleted; the store deliberately exposes no delete operation.
type Store struct {
	c *mongo.Collection
}

// New creates a new donation store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("donations")}
}

// CreateDirect inserts a manually recorded (offline) donation with status
// "pending". Donor name and email fall back to the anonymous defaults.
func (s *Store) CreateDirect(ctx context.Context, d models.Donation) (models.Donation, error) {
	if d.Amount <= 0 {
		return models.Donation{}, ErrBadAmount
	}

	d.ID = primitive.NewObjectID()
	d.DonorName = normalize.Name(d.DonorName)
	if d.DonorName == "" {
		d.DonorName = models.DefaultDonorName
	}
	d.DonorEmail = normalize.Email(d.DonorEmail)
	if d.DonorEmail == "" {
		d.DonorEmail = models.DefaultDonorEmail
	}
	d.Status = models.DonationPending
	d.TransactionID = ""
	d.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Donation{}, err
	}
	return d, nil
}

// CreateVerified inserts a donation produced by the verified-payment path:
// status "completed", TransactionID set to the gateway payment id.
//
// The unique sparse index on transaction_id makes this idempotent: when the
// same verified payload is replayed, the existing record is returned instead
// of inserting a duplicate.
func (s *Store) CreateVerified(ctx context.Context, d models.Donation) (models.Donation, bool, error) {
	if d.Amount <= 0 {
		return models.Donation{}, false, ErrBadAmount
	}
	if d.TransactionID == "" {
		return models.Donation{}, false, errors.New("verified donation requires a transaction id")
	}

	d.ID = primitive.NewObjectID()
	d.DonorName = normalize.Name(d.DonorName)
	if d.DonorName == "" {
		d.DonorName = models.DefaultDonorName
	}
	d.DonorEmail = normalize.Email(d.DonorEmail)
	if d.DonorEmail == "" {
		d.DonorEmail = models.DefaultDonorEmail
	}
	d.Status = models.DonationCompleted
	d.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, d); err != nil {
		if wafflemongo.IsDup(err) {
			existing, lookupErr := s.GetByTransactionID(ctx, d.TransactionID)
			if lookupErr != nil {
				return models.Donation{}, false, lookupErr
			}
			return existing, true, nil
		}
		return models.Donation{}, false, err
	}
	return d, false, nil
}

// GetByID loads a donation by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error) {
	var d models.Donation
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// GetByTransactionID loads a donation by its gateway payment id.
func (s *Store) GetByTransactionID(ctx context.Context, txnID string) (models.Donation, error) {
	var d models.Donation
	if err := s.c.FindOne(ctx, bson.M{"transaction_id": txnID}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Donation{}, ErrNotFound
		}
		return models.Donation{}, err
	}
	return d, nil
}

// List returns donations newest-first with skip/limit pagination, plus the
// total document count for response metadata.
func (s *Store) List(ctx context.Context, skip, limit int64) ([]models.Donation, int64, error) {
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

	var out []models.Donation
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListByEmail returns all donations recorded under the given donor email,
// newest first. This is how donations are loosely associated to a user
// account: by email match at read time, not by foreign key.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]models.Donation, error) {
	find := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"donor_email": normalize.Email(email)}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Donation
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateDonorName sets the donor name on an existing donation (post-donation
// correction, used when an anonymous donor wants a named certificate).
func (s *Store) UpdateDonorName(ctx context.Context, id primitive.ObjectID, name string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"donor_name": normalize.Name(name)}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetCertificateURL attaches the hosted certificate image URL to a donation.
func (s *Store) SetCertificateURL(ctx context.Context, id primitive.ObjectID, url string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"certificate_url": url}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
