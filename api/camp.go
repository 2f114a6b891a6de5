package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifelink-inc/lifelink-api/geo"
	"github.com/lifelink-inc/lifelink-api/schema"
	"github.com/lifelink-inc/lifelink-api/store"
)

type campWithDistance struct {
	schema.DonationCamp
	DistanceKm float64 `json:"distance_km"`
}

// listNearbyCamps returns active camps. With a known origin each camp is
// filtered against its own discovery radius and annotated with the
// distance; without one the full active list comes back.
func (s *Server) listNearbyCamps(c *gin.Context) {
	camps, err := s.mongoStore.ListActiveCamps()
	if shouldInterupt(err, c) {
		return
	}

	origin, ok := requestOrigin(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"camps": camps})
		return
	}

	nearby := make([]campWithDistance, 0, len(camps))
	for _, camp := range camps {
		location := camp.Location.Location()
		if location == nil {
			continue
		}

		d := geo.HaversineKm(origin.Latitude, origin.Longitude, location.Latitude, location.Longitude)
		if d > camp.DiscoveryRadiusKm() {
			continue
		}

		nearby = append(nearby, campWithDistance{DonationCamp: camp, DistanceKm: d})
	}

	c.JSON(http.StatusOK, gin.H{"camps": nearby})
}

// createCamp publishes a donation drive and enqueues its announcement.
// Only organizer accounts may create camps.
func (s *Server) createCamp(c *gin.Context) {
	requester := c.GetString("requester")

	account, err := s.mongoStore.GetAccount(requester)
	if err == store.ErrAccountNotFound {
		abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if account.Role != schema.ROLE_ORGANIZER {
		abortWithEncoding(c, http.StatusForbidden, errorInvalidParameters)
		return
	}

	var params struct {
		Title        string   `json:"title" binding:"required"`
		Description  string   `json:"description"`
		Date         string   `json:"date" binding:"required"`
		StartTime    string   `json:"start_time"`
		LocationText string   `json:"location_text" binding:"required"`
		Latitude     *float64 `json:"latitude"`
		Longitude    *float64 `json:"longitude"`
		RadiusKm     float64  `json:"radius_km"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	var location *schema.GeoJSON
	if params.Latitude != nil && params.Longitude != nil {
		location = schema.NewGeoJSONPoint(*params.Latitude, *params.Longitude)
	} else {
		// resolve the human-readable venue to coordinates
		resolved, err := geo.LookupPlace(c.Request.Context(), params.LocationText)
		if err != nil {
			abortWithEncoding(c, http.StatusNotFound, errorPlaceNotFound, err)
			return
		}
		location = schema.NewGeoJSONPoint(resolved.Latitude, resolved.Longitude)
	}

	camp, err := s.mongoStore.CreateCamp(&schema.DonationCamp{
		Title:        params.Title,
		Description:  params.Description,
		Date:         params.Date,
		StartTime:    params.StartTime,
		Location:     location,
		LocationText: params.LocationText,
		RadiusKm:     params.RadiusKm,
		CreatedBy:    requester,
	})
	if shouldInterupt(err, c) {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "broadcast_new_camp",
		Args: []tasks.Arg{
			{Type: "string", Value: camp.ID.Hex()},
		},
	}); err != nil {
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{"result": camp})
}

func (s *Server) closeCamp(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("campID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.mongoStore.CloseCamp(id, requester); err == store.ErrCampNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorCampNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) registerForCamp(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("campID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	camp, err := s.mongoStore.GetCamp(id)
	if err == store.ErrCampNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorCampNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if camp.Status != schema.CAMP_ACTIVE {
		abortWithEncoding(c, http.StatusGone, errorCampNotExist)
		return
	}

	// registrations carry the participant's profile so the organizer
	// roster renders without extra lookups
	account, err := s.mongoStore.GetAccount(requester)
	if err != nil {
		account = schema.PlaceholderAccount(requester)
	}

	registration, err := s.mongoStore.RegisterForCamp(&schema.CampRegistration{
		CampID:    camp.ID,
		UserID:    requester,
		UserName:  account.Name,
		UserPhone: account.Phone,
	})
	if err == store.ErrAlreadyRegistered {
		abortWithEncoding(c, http.StatusConflict, errorAlreadyRegistered)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": registration})
}

// listCampRegistrations returns the roster. Only the camp creator sees
// it.
func (s *Server) listCampRegistrations(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("campID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	camp, err := s.mongoStore.GetCamp(id)
	if err == store.ErrCampNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorCampNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if camp.CreatedBy != requester {
		abortWithEncoding(c, http.StatusForbidden, errorInvalidParameters)
		return
	}

	registrations, err := s.mongoStore.ListCampRegistrations(id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"registrations": registrations})
}
