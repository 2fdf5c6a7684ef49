package utils

import (
	"fmt"
	"strings"
)

// TravelMode is the closed set of supported transport modes.
type TravelMode string

const (
	ModeFlight TravelMode = "flight"
	ModeTrain  TravelMode = "train"
	ModeBus    TravelMode = "bus"
	ModeCar    TravelMode = "car"
)

// AllTravelModes lists every mode in display order.
var AllTravelModes = []TravelMode{ModeFlight, ModeTrain, ModeBus, ModeCar}

// ParseTravelMode decodes untrusted text into a TravelMode.
func ParseTravelMode(s string) (TravelMode, error) {
	switch TravelMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFlight:
		return ModeFlight, nil
	case ModeTrain:
		return ModeTrain, nil
	case ModeBus:
		return ModeBus, nil
	case ModeCar:
		return ModeCar, nil
	default:
		return "", fmt.Errorf("unsupported travel mode %q: %w", s, ErrUnsupportedMode)
	}
}

// Average speeds in km/h. Flight gets a fixed ground-time buffer on top of
// cruise speed (check-in, security, boarding, taxi).
const (
	flightCruiseSpeed = 700.0
	flightFixedBuffer = 3.0
	trainAvgSpeed     = 65.0
	busAvgSpeed       = 45.0
	carAvgSpeed       = 55.0
)

// maxTravelPercentage caps one-way travel time at 40% of the total trip.
// Round-trip travel then takes at most ~80%, leaving time at the destination.
const maxTravelPercentage = 40.0

// CalculateTravelTime returns the estimated one-way travel time in hours.
func CalculateTravelTime(distanceKm int, mode TravelMode) float64 {
	d := float64(distanceKm)
	switch mode {
	case ModeFlight:
		return d/flightCruiseSpeed + flightFixedBuffer
	case ModeTrain:
		return d / trainAvgSpeed
	case ModeBus:
		return d / busAvgSpeed
	case ModeCar:
		return d / carAvgSpeed
	}
	return 0
}

// FormatTravelTime renders a duration for display. Trips of 12 hours or
// more get a +/-1h range since precise times are unrealistic at that length.
func FormatTravelTime(hours float64) string {
	if hours < 1 {
		return fmt.Sprintf("%dm", int(hours*60))
	}

	if hours < 12 {
		h := int(hours)
		m := int((hours - float64(h)) * 60)
		if m > 0 {
			return fmt.Sprintf("%dh %dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%d-%d hours", int(hours-1), int(hours+1))
}

// CalculateAllTravelTimes returns formatted one-way times for every mode.
func CalculateAllTravelTimes(distanceKm int) map[string]string {
	times := make(map[string]string, len(AllTravelModes))
	for _, mode := range AllTravelModes {
		times[string(mode)] = FormatTravelTime(CalculateTravelTime(distanceKm, mode))
	}
	return times
}

// FastestMode returns the mode with the shortest one-way time.
func FastestMode(distanceKm int) TravelMode {
	best := AllTravelModes[0]
	bestTime := CalculateTravelTime(distanceKm, best)
	for _, mode := range AllTravelModes[1:] {
		if t := CalculateTravelTime(distanceKm, mode); t < bestTime {
			best, bestTime = mode, t
		}
	}
	return best
}

// SlowestMode returns the mode with the longest one-way time.
func SlowestMode(distanceKm int) TravelMode {
	worst := AllTravelModes[0]
	worstTime := CalculateTravelTime(distanceKm, worst)
	for _, mode := range AllTravelModes[1:] {
		if t := CalculateTravelTime(distanceKm, mode); t > worstTime {
			worst, worstTime = mode, t
		}
	}
	return worst
}

// IsModeTimeFeasible applies the 40% rule to a single mode.
func IsModeTimeFeasible(distanceKm, days int, mode TravelMode) (bool, string) {
	travelHours := CalculateTravelTime(distanceKm, mode)
	totalTripHours := float64(days) * 24
	travelPercentage := travelHours / totalTripHours * 100

	if travelPercentage > maxTravelPercentage {
		return false, fmt.Sprintf(
			"Selected mode requires %s one-way, which is too long for a %d-day trip. "+
				"Consider a faster mode or extend your trip duration.",
			FormatTravelTime(travelHours), days)
	}

	return true, ""
}

// CalculateRoundTripTime doubles the one-way travel time.
func CalculateRoundTripTime(distanceKm int, mode TravelMode) float64 {
	return CalculateTravelTime(distanceKm, mode) * 2
}

// EffectiveTripDays is the time left at the destination after round-trip
// travel, in days. Can go negative for hopeless combinations.
func EffectiveTripDays(totalDays, distanceKm int, mode TravelMode) float64 {
	totalHours := float64(totalDays) * 24
	return (totalHours - CalculateRoundTripTime(distanceKm, mode)) / 24
}

// RelativeCostOrder ranks modes from cheapest (1) to most expensive (4).
func RelativeCostOrder() map[TravelMode]int {
	return map[TravelMode]int{
		ModeBus:    1,
		ModeTrain:  2,
		ModeCar:    3,
		ModeFlight: 4,
	}
}
