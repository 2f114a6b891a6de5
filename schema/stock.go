package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StockCollection = "organizer_stock"

// StockListing is a supply record published by an organization. Its
// identity is the (org_id, category, blood_group) triple; writes are
// upserts with last-write-wins semantics.
type StockListing struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrgID       string             `json:"org_id" bson:"org_id"`
	Category    string             `json:"category" bson:"category"`
	BloodGroup  string             `json:"blood_group" bson:"blood_group"`
	Units       int64              `json:"units" bson:"units"`
	LastUpdated time.Time          `json:"last_updated" bson:"last_updated"`
}
