package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ShopCollection      = "shops"
	ShopStatsCollection = "shop_stats"
	ShopViewCollection  = "shop_views"
)

const (
	SHOP_APPROVED = "approved"
	SHOP_PENDING  = "pending"
)

// Shop is an approved pharmacy listing discoverable by proximity.
type Shop struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Address  string             `json:"address" bson:"address"`
	Pincode  string             `json:"pincode" bson:"pincode"`
	Phone    string             `json:"phone" bson:"phone"`
	Location *GeoJSON           `json:"location" bson:"location"`
	Open247  bool               `json:"open_247" bson:"open_247"`
	Status   string             `json:"status" bson:"status"`
	OwnerID  string             `json:"owner_id" bson:"owner_id"`
}

// ShopDayStats aggregates per-day interaction counters for one shop.
// Documents are identified by (shop_id, date) and grown with $inc
// upserts, so concurrent clicks never lose updates.
type ShopDayStats struct {
	ShopID          primitive.ObjectID `json:"shop_id" bson:"shop_id"`
	Date            string             `json:"date" bson:"date"`
	Views           int64              `json:"views" bson:"views"`
	DirectionClicks int64              `json:"direction_clicks" bson:"direction_clicks"`
	PhoneClicks     int64              `json:"phone_clicks" bson:"phone_clicks"`
}

// ShopView tracks the last time an account viewed a shop. Used to
// debounce view counting to once per 24 hours per account.
type ShopView struct {
	ShopID       primitive.ObjectID `bson:"shop_id"`
	Account      string             `bson:"account"`
	LastViewedAt time.Time          `bson:"last_viewed_at"`
}
