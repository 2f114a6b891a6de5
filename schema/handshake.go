package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const HandshakeCollection = "direct_requests"

const (
	HANDSHAKE_PENDING  = "pending"
	HANDSHAKE_RESOLVED = "resolved"
)

// HandshakeRequest is a directed contact request from an open help
// request to a supply-holding organization. The requester contact and
// request fields are denormalized so the organizer dashboard can render
// without a join. At most one handshake may exist per
// (requester, request_id, org_id); a unique index enforces it.
type HandshakeRequest struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrgID          string             `json:"org_id" bson:"org_id"`
	RequestID      primitive.ObjectID `json:"request_id" bson:"request_id"`
	Requester      string             `json:"requester" bson:"requester"`
	RequesterName  string             `json:"requester_name" bson:"requester_name"`
	RequesterPhone string             `json:"requester_phone" bson:"requester_phone"`
	Category       string             `json:"category" bson:"category"`
	BloodGroup     string             `json:"blood_group" bson:"blood_group"`
	Hospital       string             `json:"hospital" bson:"hospital"`
	Status         string             `json:"status" bson:"status"`
	Timestamp      int64              `json:"timestamp" bson:"ts"`
}
