package geo

import (
	"sort"

	"github.com/lifelink-inc/lifelink-api/schema"
)

// DefaultPageSize is the number of matches returned per page when the
// caller does not ask for a specific size.
const DefaultPageSize = 10

// Candidate is anything that can be ranked by distance from an origin.
type Candidate interface {
	Coordinates() (lat, lng float64)
}

// Match pairs a candidate with its computed distance from the origin.
type Match struct {
	Candidate  Candidate
	DistanceKm float64
}

// Rank filters candidates to those within radiusKm of the origin and
// returns them ordered nearest first. Candidates at equal distance keep
// their input order.
func Rank(origin schema.Location, candidates []Candidate, radiusKm float64) []Match {
	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		lat, lng := c.Coordinates()
		d := HaversineKm(origin.Latitude, origin.Longitude, lat, lng)
		if d > radiusKm {
			continue
		}
		matches = append(matches, Match{
			Candidate:  c,
			DistanceKm: d,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	return matches
}

// Page slices one page out of a ranked result. Page numbers start at 1;
// values out of range yield an empty slice, never an error.
func Page(matches []Match, page, size int) []Match {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * size
	if start >= len(matches) {
		return []Match{}
	}

	end := start + size
	if end > len(matches) {
		end = len(matches)
	}

	return matches[start:end]
}
