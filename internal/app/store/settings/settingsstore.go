package settingsstore

import (
	"context"
	"time"

	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the site_settings collection. There is a single
// settings document; Save upserts it.
type Store struct {
	c *mongo.Collection
}

// New creates a new settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("site_settings")}
}

// Get returns the site settings. If no settings document exists yet,
// defaults are returned.
func (s *Store) Get(ctx context.Context) (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.c.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return models.SiteSettings{SiteName: models.DefaultSiteName}, nil
	}
	if err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

// Save updates the site settings. Uses upsert so it works whether the
// document exists or not.
func (s *Store) Save(ctx context.Context, settings models.SiteSettings) error {
	now := time.Now().UTC()
	settings.UpdatedAt = &now

	update := bson.M{
		"$set": bson.M{
			"site_name":     settings.SiteName,
			"tagline":       settings.Tagline,
			"contact_email": settings.ContactEmail,
			"contact_phone": settings.ContactPhone,
			"address":       settings.Address,
			"facebook_url":  settings.FacebookURL,
			"instagram_url": settings.InstagramURL,
			"twitter_url":   settings.TwitterURL,
			"youtube_url":   settings.YouTubeURL,
			"updated_at":    settings.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{}, update, opts)
	return err
}
