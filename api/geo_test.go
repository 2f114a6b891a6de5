package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseGeoPosition(t *testing.T) {
	lat, lng, err := parseGeoPosition("22.5726;88.3639")
	assert.NoError(t, err)
	assert.Equal(t, 22.5726, lat)
	assert.Equal(t, 88.3639, lng)
}

func TestParseGeoPositionNegativeCoordinates(t *testing.T) {
	lat, lng, err := parseGeoPosition("-33.8688;151.2093")
	assert.NoError(t, err)
	assert.Equal(t, -33.8688, lat)
	assert.Equal(t, 151.2093, lng)
}

func TestParseGeoPositionInvalid(t *testing.T) {
	_, _, err := parseGeoPosition("22.5726")
	assert.Error(t, err)

	_, _, err = parseGeoPosition("not;numbers")
	assert.Error(t, err)

	_, _, err = parseGeoPosition("1;2;3")
	assert.Error(t, err)
}

func TestRequestOriginFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?lat=22.5726&lng=88.3639", nil)

	origin, ok := requestOrigin(c)
	assert.True(t, ok)
	assert.Equal(t, 22.5726, origin.Latitude)
	assert.Equal(t, 88.3639, origin.Longitude)
}

func TestRequestOriginFromHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Geo-Position", "28.7041;77.1025")

	origin, ok := requestOrigin(c)
	assert.True(t, ok)
	assert.Equal(t, 28.7041, origin.Latitude)
	assert.Equal(t, 77.1025, origin.Longitude)
}

func TestRequestOriginQueryWinsOverHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?lat=1&lng=2", nil)
	c.Request.Header.Set("Geo-Position", "28.7041;77.1025")

	origin, ok := requestOrigin(c)
	assert.True(t, ok)
	assert.Equal(t, 1.0, origin.Latitude)
	assert.Equal(t, 2.0, origin.Longitude)
}

func TestRequestOriginMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)

	_, ok := requestOrigin(c)
	assert.False(t, ok)
}

func TestResponseWithEncoding(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	responseWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid parameters")
}
