package utils

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// CalculateDistance returns the haversine distance rounded to whole
// kilometers. Rounding is half away from zero (math.Round).
func CalculateDistance(lat1, lon1, lat2, lon2 float64) int {
	return int(math.Round(Haversine(lat1, lon1, lat2, lon2)))
}

// CalculateMinimumDays maps a distance to the minimum recommended trip
// duration:
//
//	<= 300 km  -> 2 days
//	<= 700 km  -> 3 days
//	<= 1200 km -> 4 days
//	>  1200 km -> 5 days
func CalculateMinimumDays(distanceKm int) int {
	switch {
	case distanceKm <= 300:
		return 2
	case distanceKm <= 700:
		return 3
	case distanceKm <= 1200:
		return 4
	default:
		return 5
	}
}

// IsRouteFeasible checks a trip duration against the distance-implied
// minimum. The reason is empty when the route is feasible.
func IsRouteFeasible(distanceKm, days int) (bool, int, string) {
	minimumDays := CalculateMinimumDays(distanceKm)
	feasible := days >= minimumDays

	reason := ""
	if !feasible {
		reason = fmt.Sprintf(
			"Distance too long for selected trip duration. "+
				"Recommended minimum is %d days for a %dkm journey.",
			minimumDays, distanceKm)
	}

	return feasible, minimumDays, reason
}

// DistanceCategory buckets a distance for analytics and UI grouping.
func DistanceCategory(distanceKm int) string {
	switch {
	case distanceKm <= 300:
		return "short"
	case distanceKm <= 700:
		return "medium"
	case distanceKm <= 1200:
		return "long"
	default:
		return "very_long"
	}
}

// TravelCostMultiplier gives a relative cost factor against a 300km
// baseline, used for rough budget estimation.
func TravelCostMultiplier(distanceKm int) float64 {
	return float64(distanceKm) / 300.0
}
