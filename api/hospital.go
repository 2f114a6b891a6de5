package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lifelink-inc/lifelink-api/external/overpass"
	"github.com/lifelink-inc/lifelink-api/geo"
)

// DefaultHospitalRadiusKm bounds the hospital discovery query.
const DefaultHospitalRadiusKm = 20.0

type hospitalResult struct {
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

// listNearbyHospitals finds hospitals around the caller from
// OpenStreetMap, nearest first. A `condition` query parameter asks the
// classifier to pull the most relevant facilities to the top; when the
// classifier misbehaves the distance order stands.
func (s *Server) listNearbyHospitals(c *gin.Context) {
	origin, ok := requestOrigin(c)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	radiusKm := DefaultHospitalRadiusKm
	if v := c.Query("radius"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			radiusKm = parsed
		}
	}

	elements, err := s.overpassClient.SearchHospitals(c.Request.Context(), origin.Latitude, origin.Longitude, radiusKm)
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorHospitalLookup, err)
		return
	}

	candidates := make([]geo.Candidate, 0, len(elements))
	for _, e := range elements {
		if e.Name() == "" {
			continue
		}
		candidates = append(candidates, e)
	}

	matches := geo.Rank(origin, candidates, radiusKm)

	results := make([]hospitalResult, 0, len(matches))
	for _, m := range matches {
		e := m.Candidate.(overpass.Element)
		lat, lng := e.Coordinates()
		results = append(results, hospitalResult{
			Name:       e.Name(),
			Latitude:   lat,
			Longitude:  lng,
			DistanceKm: m.DistanceKm,
		})
	}

	if condition := c.Query("condition"); condition != "" && len(results) > 1 {
		results = s.reorderByRelevance(c, condition, results)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(geo.DefaultPageSize)))
	paged := pageHospitals(results, page, size)

	c.JSON(http.StatusOK, gin.H{
		"hospitals": paged,
		"total":     len(results),
		"page":      page,
	})
}

// reorderByRelevance asks the classifier which facilities suit the
// medical condition. Best effort only.
func (s *Server) reorderByRelevance(c *gin.Context, condition string, results []hospitalResult) []hospitalResult {
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}

	ranked, err := s.classifierClient.RankRelevance(c.Request.Context(), condition, names)
	if err != nil {
		c.Error(err)
		return results
	}

	reordered := make([]hospitalResult, 0, len(results))
	seen := make(map[int]bool)
	for _, idx := range ranked {
		if idx < 0 || idx >= len(results) || seen[idx] {
			continue
		}
		seen[idx] = true
		reordered = append(reordered, results[idx])
	}

	// anything the classifier skipped trails in distance order
	for i, r := range results {
		if !seen[i] {
			reordered = append(reordered, r)
		}
	}

	return reordered
}

func pageHospitals(results []hospitalResult, page, size int) []hospitalResult {
	if size <= 0 {
		size = geo.DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * size
	if start >= len(results) {
		return []hospitalResult{}
	}

	end := start + size
	if end > len(results) {
		end = len(results)
	}

	return results[start:end]
}
