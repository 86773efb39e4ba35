package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lokalapp/lokal/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	mgRoad := models.Location{Latitude: 12.9756, Longitude: 77.6066}
	koramangala := models.Location{Latitude: 12.9352, Longitude: 77.6245}

	distance := CalculateDistance(mgRoad, koramangala)
	assert.InDelta(t, 4.9, distance, 0.5)

	assert.Zero(t, CalculateDistance(mgRoad, mgRoad))
}

func TestEncodeLocation(t *testing.T) {
	loc := models.Location{Latitude: 12.9756, Longitude: 77.6066}

	hash := EncodeLocation(loc, 7)
	assert.Len(t, hash, 7)

	// Nearby points share a prefix at lower precision
	nearby := models.Location{Latitude: 12.9757, Longitude: 77.6067}
	assert.Equal(t, EncodeLocation(loc, 5), EncodeLocation(nearby, 5))
}

func TestEstimateTravelMinutes(t *testing.T) {
	assert.Equal(t, 14, EstimateTravelMinutes(5.0, 22))
	assert.Equal(t, 1, EstimateTravelMinutes(0.1, 30))
	assert.Equal(t, 1, EstimateTravelMinutes(5.0, 0))
}
