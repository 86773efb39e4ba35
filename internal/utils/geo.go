package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/lokalapp/lokal/internal/pkg/models"
)

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CalculateDistance returns the distance between two locations in kilometers
// using the Haversine formula.
func CalculateDistance(a, b models.Location) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

// EstimateTravelMinutes converts a distance to a travel-time estimate at the
// given average speed, never returning less than one minute.
func EstimateTravelMinutes(distanceKm, speedKmh float64) int {
	if speedKmh <= 0 {
		return 1
	}
	minutes := int(math.Ceil(distanceKm / speedKmh * 60))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
