package schema

// Location is a geographic coordinate with an optional resolved address.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Address   string  `json:"address,omitempty" bson:"address,omitempty"`
}

// GeoJSON is a mongodb geospatial point. Coordinates are ordered
// longitude first.
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoJSONPoint(latitude, longitude float64) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// Location converts the point back to a coordinate pair. A missing or
// malformed point yields nil.
func (g *GeoJSON) Location() *Location {
	if g == nil || len(g.Coordinates) != 2 {
		return nil
	}
	return &Location{
		Longitude: g.Coordinates[0],
		Latitude:  g.Coordinates[1],
	}
}
