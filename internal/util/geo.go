// Package util holds small pure helpers shared across layers.
package util

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean Earth radius used for every distance in this service.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle (haversine) distance between two coordinates in kilometers.
// Callers validate coordinate ranges; the result is never negative.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	// rounding can push a a hair outside [0, 1] for (near-)antipodal points
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// PointDistanceKm is DistanceKm for orb points ([lon, lat]).
func PointDistanceKm(a, b orb.Point) float64 {
	return DistanceKm(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// BoundAround returns a lat/lon box that contains every point within radiusKm of center.
// It is a cheap prefilter; callers still compare PointDistanceKm against the radius.
func BoundAround(center orb.Point, radiusKm float64) orb.Bound {
	// orb measures on a slightly larger sphere, pad so the box never clips the circle
	return geo.NewBoundAroundPoint(center, radiusKm*1000*1.01)
}
