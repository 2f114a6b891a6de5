package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lifelink-inc/lifelink-api/geo"
	"github.com/lifelink-inc/lifelink-api/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(positions[0], 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(positions[1], 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

// updateGeoPositionMiddleware is a middleware to store geo-position for every
// api requests from users
func (s *Server) updateGeoPositionMiddleware(c *gin.Context) {
	gp := c.GetHeader("Geo-Position")
	accountNumber := c.GetString("requester")

	if gp != "" && accountNumber != "" {
		if lat, long, err := parseGeoPosition(gp); err == nil {
			if err := s.mongoStore.AddGeographic(accountNumber, lat, long); err != nil {
				c.Error(err)
			}
		} else {
			c.Error(err)
		}
	}
	c.Next()
}

// requestOrigin resolves the position a proximity query should use:
// explicit lat/lng query parameters first, the Geo-Position header as
// the fallback.
func requestOrigin(c *gin.Context) (schema.Location, bool) {
	latParam := c.Query("lat")
	lngParam := c.Query("lng")
	if latParam != "" && lngParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr == nil && lngErr == nil {
			return schema.Location{Latitude: lat, Longitude: lng}, true
		}
	}

	if gp := c.GetHeader("Geo-Position"); gp != "" {
		if lat, lng, err := parseGeoPosition(gp); err == nil {
			return schema.Location{Latitude: lat, Longitude: lng}, true
		}
	}

	return schema.Location{}, false
}

// lookupPlace resolves a free-form place query to coordinates.
func (s *Server) lookupPlace(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	location, err := geo.LookupPlace(c.Request.Context(), query)
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorPlaceNotFound, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": location})
}
