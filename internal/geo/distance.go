// Package geo provides great-circle distance computation between coordinates.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points in
// kilometers using the haversine formula. Pure and deterministic.
//
// The square-root argument is clamped to [0,1] before the inverse trig so
// floating-point overshoot on antipodal or identical points can never produce
// a domain error.
func DistanceKm(a, b orb.Point) float64 {
	latA := a.Lat() * math.Pi / 180
	latB := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
