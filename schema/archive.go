package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ArchiveCollection = "successful_donations"

// ArchivedCase is the terminal copy of a resolved help request. It is
// written in the same transaction that deletes the original request and
// is immutable afterwards except for deletion by an administrator.
type ArchivedCase struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RequestID    primitive.ObjectID `json:"request_id" bson:"request_id"`
	Requester    string             `json:"requester" bson:"requester"`
	Category     string             `json:"category" bson:"category"`
	BloodGroup   string             `json:"blood_group" bson:"blood_group"`
	Hospital     string             `json:"hospital" bson:"hospital"`
	ContactName  string             `json:"contact_name" bson:"contact_name"`
	ContactPhone string             `json:"contact_phone" bson:"contact_phone"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	ResolvedBy   string             `json:"resolved_by" bson:"resolved_by"`
	ResolvedAt   time.Time          `json:"resolved_at" bson:"resolved_at"`
}
