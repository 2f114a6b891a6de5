package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CampCollection             = "camps"
	CampRegistrationCollection = "camp_registrations"
)

const (
	CAMP_ACTIVE = "active"
	CAMP_CLOSED = "closed"

	REGISTRATION_CONFIRMED = "confirmed"
	REGISTRATION_CANCELLED = "cancelled"
)

// DefaultCampRadiusKm is the discovery radius used when a camp does not
// define its own.
const DefaultCampRadiusKm = 20.0

// DonationCamp is a physical donation drive published by an organizer.
type DonationCamp struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Date         string             `json:"date" bson:"date"`
	StartTime    string             `json:"start_time" bson:"start_time"`
	Location     *GeoJSON           `json:"location" bson:"location"`
	LocationText string             `json:"location_text" bson:"location_text"`
	RadiusKm     float64            `json:"radius_km,omitempty" bson:"radius_km,omitempty"`
	Status       string             `json:"status" bson:"status"`
	CreatedBy    string             `json:"created_by" bson:"created_by"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// DiscoveryRadiusKm returns the per-camp radius override, falling back
// to the default.
func (c *DonationCamp) DiscoveryRadiusKm() float64 {
	if c.RadiusKm > 0 {
		return c.RadiusKm
	}
	return DefaultCampRadiusKm
}

// CampRegistration records a participant joining a camp. A participant
// registers at most once per camp (unique index on user_id + camp_id).
type CampRegistration struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CampID       primitive.ObjectID `json:"camp_id" bson:"camp_id"`
	UserID       string             `json:"user_id" bson:"user_id"`
	UserName     string             `json:"user_name" bson:"user_name"`
	UserPhone    string             `json:"user_phone" bson:"user_phone"`
	Status       string             `json:"status" bson:"status"`
	RegisteredAt time.Time          `json:"registered_at" bson:"registered_at"`
}
