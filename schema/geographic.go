package schema

const (
	GeographicCollection = "geographic"
)

// Geographic is one point of an account's location trail, reported by
// the Geo-Position request header.
type Geographic struct {
	AccountNumber string   `bson:"account_number"`
	Location      *GeoJSON `bson:"location"`
	Timestamp     int64    `bson:"ts"`
}
