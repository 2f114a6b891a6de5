package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Kolkata Medical College", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"22.5726","lon":"88.3639","display_name":"Medical College, College Street, Kolkata"}]`))
	}))
	defer server.Close()

	c := New(server.Client(), server.URL)
	loc, err := c.Geocode(context.Background(), "Kolkata Medical College")
	assert.NoError(t, err)
	assert.Equal(t, 22.5726, loc.Latitude)
	assert.Equal(t, 88.3639, loc.Longitude)
	assert.Equal(t, "Medical College, College Street, Kolkata", loc.Address)
}

func TestGeocodeNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := New(server.Client(), server.URL)
	_, err := c.Geocode(context.Background(), "no such place anywhere")
	assert.Equal(t, ErrPlaceNotFound, err)
}

func TestGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := New(server.Client(), server.URL)
	_, err := c.Geocode(context.Background(), "Kolkata")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "22.5726", r.URL.Query().Get("lat"))
		assert.Equal(t, "88.3639", r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name":"College Street, Kolkata, West Bengal"}`))
	}))
	defer server.Close()

	c := New(server.Client(), server.URL)
	address, err := c.ReverseGeocode(context.Background(), 22.5726, 88.3639)
	assert.NoError(t, err)
	assert.Equal(t, "College Street, Kolkata, West Bengal", address)
}

func TestReverseGeocodeNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer server.Close()

	c := New(server.Client(), server.URL)
	_, err := c.ReverseGeocode(context.Background(), 0, 0)
	assert.Equal(t, ErrAddressNotFound, err)
}
