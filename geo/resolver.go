package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"github.com/lifelink-inc/lifelink-api/schema"
)

var (
	ErrPlaceNotFound          = fmt.Errorf("no place found for the given query")
	ErrAddressNotFound        = fmt.Errorf("no address found for the given coordinates")
	ErrResolverNotInitialized = fmt.Errorf("geocoder is not initialized")
)

// Geocoder - interface for resolving free-form place queries and
// reverse-geocoding coordinates
type Geocoder interface {
	Geocode(ctx context.Context, query string) (schema.Location, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

var defaultGeocoder Geocoder

type MultipleGeocoderErrors struct {
	errors []error
}

func (e *MultipleGeocoderErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleGeocoderErrors(errors []error) *MultipleGeocoderErrors {
	return &MultipleGeocoderErrors{
		errors: errors,
	}
}

type MapsGeocoder struct {
	client *maps.Client
}

func NewMapsGeocoder(client *maps.Client) *MapsGeocoder {
	return &MapsGeocoder{
		client: client,
	}
}

func (g *MapsGeocoder) Geocode(ctx context.Context, query string) (schema.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  query,
		Language: "en",
	})
	if nil != err {
		return schema.Location{}, err
	}

	if len(geos) == 0 {
		return schema.Location{}, ErrPlaceNotFound
	}

	return schema.Location{
		Latitude:  geos[0].Geometry.Location.Lat,
		Longitude: geos[0].Geometry.Location.Lng,
		Address:   geos[0].FormattedAddress,
	}, nil
}

func (g *MapsGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: lat,
			Lng: lng,
		},
		Language: "en",
	})
	if nil != err {
		return "", err
	}

	if len(geos) == 0 {
		return "", ErrAddressNotFound
	}

	return geos[0].FormattedAddress, nil
}

// MultipleGeocoder tries each geocoder in the order given and returns
// the first successful answer. The aggregate error keeps every
// geocoder's failure so an operator can tell a miss from an outage.
type MultipleGeocoder struct {
	geocoders []Geocoder
}

func NewMultipleGeocoder(geocoders ...Geocoder) *MultipleGeocoder {
	return &MultipleGeocoder{
		geocoders: geocoders,
	}
}

func (m *MultipleGeocoder) Geocode(ctx context.Context, query string) (schema.Location, error) {
	var errors []error
	for _, geocoder := range m.geocoders {
		result, err := geocoder.Geocode(ctx, query)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return schema.Location{}, NewMultipleGeocoderErrors(errors)
}

func (m *MultipleGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	var errors []error
	for _, geocoder := range m.geocoders {
		result, err := geocoder.ReverseGeocode(ctx, lat, lng)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return "", NewMultipleGeocoderErrors(errors)
}

func SetGeocoder(geocoder Geocoder) {
	defaultGeocoder = geocoder
}

// LookupPlace resolves a free-form query with the process-wide geocoder.
func LookupPlace(ctx context.Context, query string) (schema.Location, error) {
	if defaultGeocoder == nil {
		return schema.Location{}, ErrResolverNotInitialized
	}

	return defaultGeocoder.Geocode(ctx, query)
}

// LookupAddress reverse-geocodes coordinates with the process-wide
// geocoder.
func LookupAddress(ctx context.Context, lat, lng float64) (string, error) {
	if defaultGeocoder == nil {
		return "", ErrResolverNotInitialized
	}

	return defaultGeocoder.ReverseGeocode(ctx, lat, lng)
}
