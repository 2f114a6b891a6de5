package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifelink-inc/lifelink-api/geo"
	"github.com/lifelink-inc/lifelink-api/match"
	"github.com/lifelink-inc/lifelink-api/schema"
	"github.com/lifelink-inc/lifelink-api/store"
)

// createRequest opens a help request for the requester and enqueues
// the proximity broadcast.
func (s *Server) createRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Category     string `json:"category" binding:"required"`
		BloodGroup   string `json:"blood_group"`
		Hospital     string `json:"hospital"`
		ContactName  string `json:"contact_name"`
		ContactPhone string `json:"contact_phone"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.mongoStore.CreateHelpRequest(&schema.HelpRequest{
		Requester:    requester,
		Category:     params.Category,
		BloodGroup:   params.BloodGroup,
		Hospital:     params.Hospital,
		ContactName:  params.ContactName,
		ContactPhone: params.ContactPhone,
	})
	if err == store.ErrMultipleRequestMade {
		abortWithEncoding(c, http.StatusConflict, errorMultipleRequestMade)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	// broadcast to nearby accounts when we know where the requester is
	if origin, ok := requestOrigin(c); ok {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "broadcast_new_request",
			Args: []tasks.Arg{
				{Type: "string", Value: request.ID.Hex()},
				{Type: "float64", Value: origin.Latitude},
				{Type: "float64", Value: origin.Longitude},
			},
		}); err != nil {
			c.Error(err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// currentRequest returns the requester's open request, if any.
func (s *Server) currentRequest(c *gin.Context) {
	requester := c.GetString("requester")

	request, err := s.mongoStore.GetOpenHelpRequestByRequester(requester)
	if err == store.ErrRequestNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

func (s *Server) getRequest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	request, err := s.mongoStore.GetHelpRequest(id)
	if err == store.ErrRequestNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// answerRequest settles an open request: the requester either cancels
// it or marks it resolved.
func (s *Server) answerRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		Status     string `json:"status" binding:"required"`
		ResolvedBy string `json:"resolved_by"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	switch params.Status {
	case schema.REQUEST_CANCELLED:
		if err := s.mongoStore.CancelHelpRequest(id, requester); err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
			return
		} else if shouldInterupt(err, c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": "OK"})

	case schema.REQUEST_RESOLVED:
		archived, err := s.mongoStore.ResolveHelpRequest(id, requester, params.ResolvedBy)
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
			return
		} else if shouldInterupt(err, c) {
			return
		}

		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "notify_request_resolved",
			Args: []tasks.Arg{
				{Type: "string", Value: id.Hex()},
			},
		}); err != nil {
			c.Error(err)
		}

		c.JSON(http.StatusOK, gin.H{"result": archived})

	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
	}
}

// listMatches returns one page of the current match set for a request.
func (s *Server) listMatches(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	request, err := s.mongoStore.GetHelpRequest(id)
	if err == store.ErrRequestNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if !request.IsOpen() {
		abortWithEncoding(c, http.StatusGone, errorRequestNotOpen)
		return
	}

	snapshot, err := match.BuildSnapshot(s.mongoStore, request)
	if shouldInterupt(err, c) {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(geo.DefaultPageSize)))
	entries := pageEntries(snapshot.Entries, page, size)

	c.JSON(http.StatusOK, gin.H{
		"request_id": snapshot.RequestID,
		"entries":    entries,
		"total":      len(snapshot.Entries),
		"page":       page,
	})
}

func pageEntries(entries []match.Entry, page, size int) []match.Entry {
	if size <= 0 {
		size = geo.DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * size
	if start >= len(entries) {
		return []match.Entry{}
	}

	end := start + size
	if end > len(entries) {
		end = len(entries)
	}

	return entries[start:end]
}

// liveMatches streams match snapshots over server-sent events until the
// client disconnects or the request leaves the open state.
func (s *Server) liveMatches(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	request, err := s.mongoStore.GetHelpRequest(id)
	if err == store.ErrRequestNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if request.Requester != requester {
		abortWithEncoding(c, http.StatusForbidden, errorInvalidParameters)
		return
	}

	subscriber := match.NewSubscriber(s.mongoStore, request)
	if err := subscriber.Start(c.Request.Context()); err != nil {
		if err == store.ErrRequestNotOpen {
			abortWithEncoding(c, http.StatusGone, errorRequestNotOpen)
			return
		}
		shouldInterupt(err, c)
		return
	}
	defer subscriber.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-subscriber.Updates():
			if !ok {
				return false
			}
			c.SSEvent("matches", snapshot)
			return !snapshot.Final
		case <-clientGone:
			return false
		}
	})
}

// createHandshake records a direct contact from the requester to one
// organization and notifies it.
func (s *Server) createHandshake(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		OrgID string `json:"org_id" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.mongoStore.GetHelpRequest(id)
	if err == store.ErrRequestNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if request.Requester != requester {
		abortWithEncoding(c, http.StatusForbidden, errorInvalidParameters)
		return
	}

	if !request.IsOpen() {
		abortWithEncoding(c, http.StatusGone, errorRequestNotOpen)
		return
	}

	// handshakes carry the request details so the organizer inbox
	// renders without extra lookups
	handshake := &schema.HandshakeRequest{
		OrgID:          params.OrgID,
		RequestID:      request.ID,
		Requester:      requester,
		RequesterName:  request.ContactName,
		RequesterPhone: request.ContactPhone,
		Category:       request.Category,
		BloodGroup:     request.BloodGroup,
		Hospital:       request.Hospital,
	}

	created, err := s.mongoStore.CreateHandshake(handshake)
	if err == store.ErrHandshakeExists {
		abortWithEncoding(c, http.StatusConflict, errorHandshakeExists)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "notify_handshake_created",
		Args: []tasks.Arg{
			{Type: "string", Value: request.ID.Hex()},
			{Type: "string", Value: params.OrgID},
		},
	}); err != nil {
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{"result": created})
}

// listRequestHandshakes lists the contacts the requester made for one
// request.
func (s *Server) listRequestHandshakes(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	request, err := s.mongoStore.GetHelpRequest(id)
	if err == store.ErrRequestNotExist {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if request.Requester != requester {
		abortWithEncoding(c, http.StatusForbidden, errorInvalidParameters)
		return
	}

	handshakes, err := s.mongoStore.ListHandshakesByRequest(id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"handshakes": handshakes})
}
