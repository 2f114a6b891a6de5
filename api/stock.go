package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifelink-inc/lifelink-api/schema"
	"github.com/lifelink-inc/lifelink-api/store"
)

// upsertStock replaces the requester organization's inventory entries.
// Submitting the same payload twice leaves the same state behind.
func (s *Server) upsertStock(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Listings []struct {
			Category   string `json:"category" binding:"required"`
			BloodGroup string `json:"blood_group"`
			Units      int64  `json:"units"`
		} `json:"listings" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	listings := make([]schema.StockListing, 0, len(params.Listings))
	for _, l := range params.Listings {
		if l.Units < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		listings = append(listings, schema.StockListing{
			Category:   l.Category,
			BloodGroup: l.BloodGroup,
			Units:      l.Units,
		})
	}

	if err := s.mongoStore.UpsertStockListings(requester, listings); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) listOwnStock(c *gin.Context) {
	requester := c.GetString("requester")

	listings, err := s.mongoStore.ListStockByOrg(requester)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (s *Server) deleteStock(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Category   string `json:"category" binding:"required"`
		BloodGroup string `json:"blood_group"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	err := s.mongoStore.DeleteStockListing(requester, params.Category, params.BloodGroup)
	if err == store.ErrStockNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorStockNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
