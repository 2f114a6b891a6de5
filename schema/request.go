package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const HelpRequestCollection = "help_requests"

const (
	REQUEST_OPEN      = "open"
	REQUEST_RESOLVED  = "resolved"
	REQUEST_CANCELLED = "cancelled"
)

// HelpRequest is an open emergency broadcast asking for blood or organ
// supply. A requester holds at most one open request at a time; the
// invariant is enforced by a unique partial index on the collection.
type HelpRequest struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Requester    string             `json:"requester" bson:"requester"`
	Category     string             `json:"category" bson:"category"`
	BloodGroup   string             `json:"blood_group" bson:"blood_group"`
	Hospital     string             `json:"hospital" bson:"hospital"`
	ContactName  string             `json:"contact_name" bson:"contact_name"`
	ContactPhone string             `json:"contact_phone" bson:"contact_phone"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// IsOpen reports whether the request is still broadcasting.
func (r *HelpRequest) IsOpen() bool {
	return r.Status == REQUEST_OPEN
}
