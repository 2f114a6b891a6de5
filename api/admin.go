package api

import (
	"net/http"
	"strconv"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifelink-inc/lifelink-api/store"
)

// adminListArchives returns recently resolved cases for the admin
// dashboard.
func (s *Server) adminListArchives(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	cases, err := s.mongoStore.ListArchivedCases(limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"archives": cases})
}

func (s *Server) adminDeleteArchive(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("archiveID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.DeleteArchivedCase(id); err == store.ErrArchiveNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorArchiveNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminTriggerReconcile forces a sweep of orphaned handshakes without
// waiting for the periodic workflow.
func (s *Server) adminTriggerReconcile(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "resolve_orphaned_handshakes",
	}); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) metricArchiveCount(c *gin.Context) {
	count, err := s.mongoStore.CountArchivedCases()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
