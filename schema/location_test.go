package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoJSONPointRoundTrip(t *testing.T) {
	point := NewGeoJSONPoint(22.5726, 88.3639)
	assert.Equal(t, "Point", point.Type)
	// mongodb stores longitude first
	assert.Equal(t, []float64{88.3639, 22.5726}, point.Coordinates)

	loc := point.Location()
	assert.NotNil(t, loc)
	assert.Equal(t, 22.5726, loc.Latitude)
	assert.Equal(t, 88.3639, loc.Longitude)
}

func TestGeoJSONLocationMalformed(t *testing.T) {
	var missing *GeoJSON
	assert.Nil(t, missing.Location())

	assert.Nil(t, (&GeoJSON{Type: "Point"}).Location())
	assert.Nil(t, (&GeoJSON{Type: "Point", Coordinates: []float64{88.3639}}).Location())
}
