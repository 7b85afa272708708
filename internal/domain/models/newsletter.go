// internal/domain/models/newsletter.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsletterHistory is the audit record of one newsletter send event.
//
// AttemptedCount is the number of active subscribers at dispatch time;
// SentCount is the number of sends that actually succeeded. The two can
// differ when individual sends fail.
type NewsletterHistory struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DispatchID     string             `bson:"dispatch_id" json:"dispatch_id"`
	Subject        string             `bson:"subject" json:"subject"`
	Body           string             `bson:"body" json:"body"` // sanitized HTML
	AttemptedCount int                `bson:"attempted_count" json:"attempted_count"`
	SentCount      int                `bson:"sent_count" json:"sent_count"`
	SentAt         time.Time          `bson:"sent_at" json:"sent_at"`
}
