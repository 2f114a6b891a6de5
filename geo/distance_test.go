package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKmKolkata(t *testing.T) {
	// Esplanade to Dum Dum, roughly 4.8 km apart
	d := HaversineKm(22.5726, 88.3639, 22.60, 88.40)
	assert.InDelta(t, 4.8, d, 0.1)
	assert.True(t, d <= 20.0)
}

func TestHaversineKmSamePoint(t *testing.T) {
	d := HaversineKm(22.5726, 88.3639, 22.5726, 88.3639)
	assert.Equal(t, 0.0, d)
}

func TestHaversineKmSymmetric(t *testing.T) {
	forward := HaversineKm(28.6139, 77.2090, 19.0760, 72.8777)
	backward := HaversineKm(19.0760, 72.8777, 28.6139, 77.2090)
	assert.Equal(t, forward, backward)
}

func TestHaversineKmDelhiMumbai(t *testing.T) {
	d := HaversineKm(28.6139, 77.2090, 19.0760, 72.8777)
	assert.InDelta(t, 1150, d, 20)
}
