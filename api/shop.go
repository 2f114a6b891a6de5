package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifelink-inc/lifelink-api/geo"
	"github.com/lifelink-inc/lifelink-api/schema"
	"github.com/lifelink-inc/lifelink-api/store"
)

// DefaultShopRadiusKm bounds the pharmacy discovery query.
const DefaultShopRadiusKm = 50.0

type shopCandidate struct {
	shop schema.Shop
}

func (s shopCandidate) Coordinates() (float64, float64) {
	location := s.shop.Location.Location()
	if location == nil {
		return 0, 0
	}
	return location.Latitude, location.Longitude
}

type shopWithDistance struct {
	schema.Shop
	DistanceKm float64 `json:"distance_km"`
}

// listNearbyShops returns approved pharmacies around the caller,
// nearest first.
func (s *Server) listNearbyShops(c *gin.Context) {
	origin, ok := requestOrigin(c)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	radiusKm := DefaultShopRadiusKm
	if v := c.Query("radius"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			radiusKm = parsed
		}
	}

	shops, err := s.mongoStore.ListApprovedShops()
	if shouldInterupt(err, c) {
		return
	}

	candidates := make([]geo.Candidate, 0, len(shops))
	for _, shop := range shops {
		if shop.Location.Location() == nil {
			continue
		}
		candidates = append(candidates, shopCandidate{shop: shop})
	}

	matches := geo.Rank(origin, candidates, radiusKm)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(geo.DefaultPageSize)))
	paged := geo.Page(matches, page, size)

	results := make([]shopWithDistance, 0, len(paged))
	for _, m := range paged {
		results = append(results, shopWithDistance{
			Shop:       m.Candidate.(shopCandidate).shop,
			DistanceKm: m.DistanceKm,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"shops": results,
		"total": len(matches),
		"page":  page,
	})
}

// createShop submits a pharmacy listing. Listings start pending and
// stay invisible until approved.
func (s *Server) createShop(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Name      string  `json:"name" binding:"required"`
		Address   string  `json:"address" binding:"required"`
		Pincode   string  `json:"pincode"`
		Phone     string  `json:"phone"`
		Latitude  float64 `json:"latitude" binding:"required"`
		Longitude float64 `json:"longitude" binding:"required"`
		Open247   bool    `json:"open_247"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	shop, err := s.mongoStore.CreateShop(&schema.Shop{
		Name:     params.Name,
		Address:  params.Address,
		Pincode:  params.Pincode,
		Phone:    params.Phone,
		Location: schema.NewGeoJSONPoint(params.Latitude, params.Longitude),
		Open247:  params.Open247,
		OwnerID:  requester,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": shop})
}

func (s *Server) recordShopView(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("shopID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.mongoStore.RecordShopView(id, requester); err == store.ErrShopNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorShopNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// recordShopClick counts a directions or phone tap.
func (s *Server) recordShopClick(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("shopID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		Type string `json:"type" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	var counter string
	switch params.Type {
	case "directions":
		counter = "direction_clicks"
	case "phone":
		counter = "phone_clicks"
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if _, err := s.mongoStore.GetShop(id); err == store.ErrShopNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorShopNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.IncrementShopCounter(id, counter); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// shopStats returns one day of counters. Only the shop owner may read
// them.
func (s *Server) shopStats(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("shopID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	shop, err := s.mongoStore.GetShop(id)
	if err == store.ErrShopNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorShopNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if shop.OwnerID != requester {
		abortWithEncoding(c, http.StatusForbidden, errorInvalidParameters)
		return
	}

	date := c.DefaultQuery("date", time.Now().UTC().Format("2006-01-02"))

	stats, err := s.mongoStore.GetShopDayStats(id, date)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
