package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lifelink-inc/lifelink-api/external/mocks"
	"github.com/lifelink-inc/lifelink-api/geo"
	"github.com/lifelink-inc/lifelink-api/schema"
)

func TestLookupPlace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGeocoder(ctl)
	g.EXPECT().Geocode(gomock.Any(), "AIIMS Delhi").Return(schema.Location{
		Latitude:  28.5672,
		Longitude: 77.2100,
		Address:   "AIIMS, Ansari Nagar, New Delhi",
	}, nil).Times(1)

	geo.SetGeocoder(g)
	defer geo.SetGeocoder(nil)

	s := &Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/places", s.lookupPlace)

	req := httptest.NewRequest("GET", "/places?query=AIIMS+Delhi", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "28.5672")
	assert.Contains(t, w.Body.String(), "Ansari Nagar")
}

func TestLookupPlaceNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGeocoder(ctl)
	g.EXPECT().Geocode(gomock.Any(), "nowhere").Return(schema.Location{}, geo.ErrPlaceNotFound).Times(1)

	geo.SetGeocoder(g)
	defer geo.SetGeocoder(nil)

	s := &Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/places", s.lookupPlace)

	req := httptest.NewRequest("GET", "/places?query=nowhere", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLookupPlaceMissingQuery(t *testing.T) {
	s := &Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/places", s.lookupPlace)

	req := httptest.NewRequest("GET", "/places", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
