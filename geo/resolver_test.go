package geo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifelink-inc/lifelink-api/schema"
)

type stubGeocoder struct {
	location schema.Location
	address  string
	err      error
}

func (s *stubGeocoder) Geocode(ctx context.Context, query string) (schema.Location, error) {
	if s.err != nil {
		return schema.Location{}, s.err
	}
	return s.location, nil
}

func (s *stubGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.address, nil
}

func TestMultipleGeocoderFirstWins(t *testing.T) {
	g := NewMultipleGeocoder(
		&stubGeocoder{location: schema.Location{Latitude: 22.5726, Longitude: 88.3639}},
		&stubGeocoder{err: fmt.Errorf("should not be reached")},
	)

	loc, err := g.Geocode(context.Background(), "Kolkata")
	assert.NoError(t, err)
	assert.Equal(t, 22.5726, loc.Latitude)
	assert.Equal(t, 88.3639, loc.Longitude)
}

func TestMultipleGeocoderFallsBack(t *testing.T) {
	g := NewMultipleGeocoder(
		&stubGeocoder{err: ErrPlaceNotFound},
		&stubGeocoder{location: schema.Location{Latitude: 28.6139, Longitude: 77.2090}},
	)

	loc, err := g.Geocode(context.Background(), "Delhi")
	assert.NoError(t, err)
	assert.Equal(t, 28.6139, loc.Latitude)
}

func TestMultipleGeocoderAllFail(t *testing.T) {
	g := NewMultipleGeocoder(
		&stubGeocoder{err: ErrPlaceNotFound},
		&stubGeocoder{err: ErrPlaceNotFound},
	)

	loc, err := g.Geocode(context.Background(), "nowhere at all")
	assert.Error(t, err)
	assert.EqualError(t, err, "#0: no place found for the given query\n#1: no place found for the given query")
	e, ok := err.(*MultipleGeocoderErrors)
	assert.True(t, ok)
	assert.Len(t, e.errors, 2)
	assert.Equal(t, schema.Location{}, loc)
}

func TestMultipleGeocoderReverseFallsBack(t *testing.T) {
	g := NewMultipleGeocoder(
		&stubGeocoder{err: ErrAddressNotFound},
		&stubGeocoder{address: "Park Street, Kolkata"},
	)

	address, err := g.ReverseGeocode(context.Background(), 22.5726, 88.3639)
	assert.NoError(t, err)
	assert.Equal(t, "Park Street, Kolkata", address)
}

func TestLookupPlaceWithoutResolver(t *testing.T) {
	SetGeocoder(nil)
	_, err := LookupPlace(context.Background(), "Kolkata")
	assert.Equal(t, ErrResolverNotInitialized, err)
}
