// internal/domain/models/volunteer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Volunteer application statuses.
const (
	VolunteerPending  = "pending"
	VolunteerApproved = "approved"
	VolunteerRejected = "rejected"
)

// Volunteer is an application submitted through the public volunteer form.
type Volunteer struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Interest string             `bson:"interest,omitempty" json:"interest,omitempty"`
	Message  string             `bson:"message,omitempty" json:"message,omitempty"`
	Status   string             `bson:"status" json:"status"` // pending | approved | rejected

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsValidVolunteerStatus reports whether s is a known volunteer status.
func IsValidVolunteerStatus(s string) bool {
	switch s {
	case VolunteerPending, VolunteerApproved, VolunteerRejected:
		return true
	}
	return false
}
