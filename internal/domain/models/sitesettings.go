// internal/domain/models/sitesettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings holds organization-wide configuration editable by admins.
// There is a single settings document; updates upsert it.
type SiteSettings struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	SiteName     string `bson:"site_name" json:"site_name"`
	Tagline      string `bson:"tagline,omitempty" json:"tagline,omitempty"`
	ContactEmail string `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	ContactPhone string `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	Address      string `bson:"address,omitempty" json:"address,omitempty"`

	// Social links
	FacebookURL  string `bson:"facebook_url,omitempty" json:"facebook_url,omitempty"`
	InstagramURL string `bson:"instagram_url,omitempty" json:"instagram_url,omitempty"`
	TwitterURL   string `bson:"twitter_url,omitempty" json:"twitter_url,omitempty"`
	YouTubeURL   string `bson:"youtube_url,omitempty" json:"youtube_url,omitempty"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DefaultSiteName is used when no settings document exists yet.
const DefaultSiteName = "SevaHub"
