// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent
(CreateIndexes is a no-op for indexes that already exist with the same
options). We aggregate errors so any problem is visible and startup can
fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureDonations(ctx, db); err != nil {
		problems = append(problems, "donations: "+err.Error())
	}
	if err := ensureSubscribers(ctx, db); err != nil {
		problems = append(problems, "subscribers: "+err.Error())
	}
	if err := ensureWorks(ctx, db); err != nil {
		problems = append(problems, "works: "+err.Error())
	}
	if err := ensureContacts(ctx, db); err != nil {
		problems = append(problems, "contacts: "+err.Error())
	}
	if err := ensureNewsletterHistory(ctx, db); err != nil {
		problems = append(problems, "newsletter_history: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func ensureDonations(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("donations").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// Unique + sparse: only verified payments carry a transaction id,
			// and a replayed gateway callback must not insert a second record.
			Keys:    bson.D{{Key: "transaction_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			// "my donations" lookups resolve the soft user reference by email.
			Keys: bson.D{{Key: "donor_email", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	})
	return err
}

func ensureSubscribers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("subscribers").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "active", Value: 1}},
		},
	})
	return err
}

func ensureWorks(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("works").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
	})
	return err
}

func ensureContacts(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("contacts").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
	})
	return err
}

func ensureNewsletterHistory(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("newsletter_history").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "sent_at", Value: -1}},
		},
	})
	return err
}
