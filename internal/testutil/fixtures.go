package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateDonation inserts a donation with the given amount and status.
func (f *Fixtures) CreateDonation(ctx context.Context, amount float64, status string) models.Donation {
	f.t.Helper()

	d := models.Donation{
		ID:         primitive.NewObjectID(),
		Amount:     amount,
		DonorName:  models.DefaultDonorName,
		DonorEmail: models.DefaultDonorEmail,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := f.db.Collection("donations").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test donation: %v", err)
	}
	return d
}

// CreateCompletedDonation inserts a completed donation with donor details and
// a transaction id, as the verified-payment path would.
func (f *Fixtures) CreateCompletedDonation(ctx context.Context, amount float64, name, email, txnID string) models.Donation {
	f.t.Helper()

	d := models.Donation{
		ID:            primitive.NewObjectID(),
		Amount:        amount,
		DonorName:     name,
		DonorEmail:    email,
		PaymentMethod: "razorpay",
		TransactionID: txnID,
		Status:        models.DonationCompleted,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := f.db.Collection("donations").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test donation: %v", err)
	}
	return d
}

// CreateUser inserts a user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$fixture-not-a-real-hash",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateSubscriber inserts a newsletter subscriber.
func (f *Fixtures) CreateSubscriber(ctx context.Context, email string, active bool) models.Subscriber {
	f.t.Helper()

	s := models.Subscriber{
		ID:           primitive.NewObjectID(),
		Email:        email,
		Active:       active,
		SubscribedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("subscribers").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test subscriber: %v", err)
	}
	return s
}

// CreateWork inserts a work/project record.
func (f *Fixtures) CreateWork(ctx context.Context, title, slug, status string) models.Work {
	f.t.Helper()

	now := time.Now().UTC()
	w := models.Work{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Slug:      slug,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("works").InsertOne(ctx, w); err != nil {
		f.t.Fatalf("failed to create test work: %v", err)
	}
	return w
}

// CreateVolunteer inserts a volunteer application.
func (f *Fixtures) CreateVolunteer(ctx context.Context, name, email string) models.Volunteer {
	f.t.Helper()

	v := models.Volunteer{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Status:    models.VolunteerPending,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("volunteers").InsertOne(ctx, v); err != nil {
		f.t.Fatalf("failed to create test volunteer: %v", err)
	}
	return v
}
