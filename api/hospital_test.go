package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifelink-inc/lifelink-api/external/overpass"
)

func TestListNearbyHospitals(t *testing.T) {
	overpassServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"elements": [
				{"type": "node", "id": 1, "lat": 22.7674, "lon": 88.3683, "tags": {"amenity": "hospital", "name": "Far Hospital"}},
				{"type": "node", "id": 2, "lat": 22.5726, "lon": 88.3639, "tags": {"amenity": "hospital", "name": "Near Hospital"}},
				{"type": "node", "id": 3, "lat": 22.5700, "lon": 88.3600, "tags": {"amenity": "hospital"}}
			]
		}`))
	}))
	defer overpassServer.Close()

	s := &Server{
		httpClient:     http.DefaultClient,
		overpassClient: overpass.New(http.DefaultClient, []string{overpassServer.URL}),
	}

	router := testRouter(s, "acct-1", "GET", "/hospitals", s.listNearbyHospitals)

	req := httptest.NewRequest("GET", "/hospitals?lat=22.5675&lng=88.3525&radius=15", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Hospitals []hospitalResult `json:"hospitals"`
		Total     int              `json:"total"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)

	// the far hospital is outside the radius, the unnamed one is skipped
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Near Hospital", resp.Hospitals[0].Name)
	assert.InDelta(t, 1.3, resp.Hospitals[0].DistanceKm, 0.5)
}

func TestListNearbyHospitalsLookupFailure(t *testing.T) {
	overpassServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer overpassServer.Close()

	s := &Server{
		httpClient:     http.DefaultClient,
		overpassClient: overpass.New(http.DefaultClient, []string{overpassServer.URL}),
	}

	router := testRouter(s, "acct-1", "GET", "/hospitals", s.listNearbyHospitals)

	req := httptest.NewRequest("GET", "/hospitals?lat=22.5675&lng=88.3525", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestListNearbyHospitalsNoOrigin(t *testing.T) {
	s := &Server{}

	router := testRouter(s, "acct-1", "GET", "/hospitals", s.listNearbyHospitals)

	req := httptest.NewRequest("GET", "/hospitals", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
