// internal/domain/models/galleryitem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem is a hosted image shown in the public gallery. WorkID is an
// optional soft reference to the work/project the image belongs to; it is
// resolved at read time and never enforced.
type GalleryItem struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title    string              `bson:"title" json:"title"`
	ImageURL string              `bson:"image_url" json:"image_url"`
	Category string              `bson:"category,omitempty" json:"category,omitempty"`
	WorkID   *primitive.ObjectID `bson:"work_id,omitempty" json:"work_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
