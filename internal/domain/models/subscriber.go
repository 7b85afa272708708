// internal/domain/models/subscriber.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber is a newsletter subscription. Email is unique; unsubscribing
// marks the record inactive rather than deleting it, so a re-subscribe
// reactivates the same document.
type Subscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Active       bool               `bson:"active" json:"active"`
	SubscribedAt time.Time          `bson:"subscribed_at" json:"subscribed_at"`
}
