package services

import (
	"fmt"
	"strings"

	"tourapp/internal/models/request_models"
	"tourapp/internal/models/response_models"
	"tourapp/pkg/utils"
)

type TravelModeServiceInterface interface {
	GetTravelModes(req request_models.TravelModeRequest) (*response_models.TravelModeResponse, error)
}

type TravelModeService struct{}

func NewTravelModeService() TravelModeServiceInterface {
	return &TravelModeService{}
}

// RecommendedModes returns distance-appropriate travel modes ordered
// by preference. Thresholds reflect typical Indian intercity travel.
func RecommendedModes(distanceKm int) []utils.TravelMode {
	switch {
	case distanceKm <= 300:
		return []utils.TravelMode{utils.ModeCar, utils.ModeBus}
	case distanceKm <= 700:
		return []utils.TravelMode{utils.ModeTrain, utils.ModeBus}
	case distanceKm <= 1200:
		return []utils.TravelMode{utils.ModeTrain, utils.ModeFlight}
	default:
		return []utils.TravelMode{utils.ModeFlight, utils.ModeTrain}
	}
}

func (t *TravelModeService) GetTravelModes(req request_models.TravelModeRequest) (*response_models.TravelModeResponse, error) {
	var (
		distanceKm       int
		srcName, dstName string
	)

	switch {
	case req.SourceCity != "" && req.DestinationCity != "":
		src, err := resolveCity(req.SourceCity, "Source")
		if err != nil {
			return nil, err
		}
		dst, err := resolveCity(req.DestinationCity, "Destination")
		if err != nil {
			return nil, err
		}
		distanceKm = utils.CalculateDistance(src.Lat, src.Lon, dst.Lat, dst.Lon)
		srcName, dstName = src.Name, dst.Name

	case req.DistanceKm > 0:
		distanceKm = req.DistanceKm

	default:
		return nil, fmt.Errorf("%w: provide either (source_city + destination_city) or distance_km, do not mix both formats", utils.ErrInvalidInput)
	}

	recommended := RecommendedModes(distanceKm)

	preferredValid := true
	preferredReason := ""
	if req.PreferredMode != "" {
		preferred, err := utils.ParseTravelMode(req.PreferredMode)
		if err != nil {
			return nil, err
		}
		preferredValid, preferredReason = validatePreferredMode(distanceKm, req.Days, preferred, recommended)
	}

	modes := make([]string, 0, len(recommended))
	for _, m := range recommended {
		modes = append(modes, string(m))
	}

	return &response_models.TravelModeResponse{
		DistanceKm:          distanceKm,
		SourceCity:          srcName,
		DestinationCity:     dstName,
		RecommendedModes:    modes,
		EstimatedTimes:      utils.CalculateAllTravelTimes(distanceKm),
		PreferredModeValid:  preferredValid,
		PreferredModeReason: preferredReason,
	}, nil
}

// validatePreferredMode checks list membership first, then the
// travel-time share rule.
func validatePreferredMode(distanceKm, days int, preferred utils.TravelMode, recommended []utils.TravelMode) (bool, string) {
	inList := false
	for _, m := range recommended {
		if m == preferred {
			inList = true
			break
		}
	}
	if !inList {
		names := make([]string, 0, len(recommended))
		for _, m := range recommended {
			names = append(names, string(m))
		}
		return false, fmt.Sprintf(
			"Selected mode is not realistic for %dkm distance. Recommended: %s.",
			distanceKm, strings.Join(names, ", "),
		)
	}

	return utils.IsModeTimeFeasible(distanceKm, days, preferred)
}
