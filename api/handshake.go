package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifelink-inc/lifelink-api/store"
)

// listOrgHandshakes is the organizer inbox: every direct contact made
// to the requester organization.
func (s *Server) listOrgHandshakes(c *gin.Context) {
	requester := c.GetString("requester")

	handshakes, err := s.mongoStore.ListHandshakesByOrg(requester)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"handshakes": handshakes})
}

// handshakeBadge returns the pending handshake count for the organizer
// app badge.
func (s *Server) handshakeBadge(c *gin.Context) {
	requester := c.GetString("requester")

	count, err := s.mongoStore.CountPendingHandshakes(requester)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending": count})
}

// resolveHandshake lets an organizer mark a contact as handled.
func (s *Server) resolveHandshake(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("handshakeID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.mongoStore.ResolveHandshake(id, requester); err == store.ErrHandshakeNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorHandshakeNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
