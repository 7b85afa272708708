// internal/domain/models/work.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Work statuses.
const (
	WorkDraft     = "draft"
	WorkPublished = "published"
)

// Work is a project or blog-style write-up about the organization's work.
// Slug is unique and used for public lookup. Content is rich HTML and is
// sanitized before every write.
type Work struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Content       string             `bson:"content,omitempty" json:"content,omitempty"`
	CoverImageURL string             `bson:"cover_image_url,omitempty" json:"cover_image_url,omitempty"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	Status        string             `bson:"status" json:"status"` // draft | published

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsValidWorkStatus reports whether s is a known work status.
func IsValidWorkStatus(s string) bool {
	return s == WorkDraft || s == WorkPublished
}
