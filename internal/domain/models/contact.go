// internal/domain/models/contact.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact message statuses.
const (
	ContactNew       = "new"
	ContactRead      = "read"
	ContactResponded = "responded"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Subject string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message string             `bson:"message" json:"message"`
	Status  string             `bson:"status" json:"status"` // new | read | responded

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsValidContactStatus reports whether s is a known contact status.
func IsValidContactStatus(s string) bool {
	switch s {
	case ContactNew, ContactRead, ContactResponded:
		return true
	}
	return false
}
