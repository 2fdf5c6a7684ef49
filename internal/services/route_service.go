package services

import (
	"fmt"

	"tourapp/internal/data"
	"tourapp/internal/models/request_models"
	"tourapp/internal/models/response_models"
	"tourapp/pkg/utils"
)

type RouteServiceInterface interface {
	ValidateRoute(req request_models.RouteValidationRequest) (*response_models.RouteValidationResponse, error)
}

type RouteService struct{}

func NewRouteService() RouteServiceInterface {
	return &RouteService{}
}

// ValidateRoute resolves the endpoints, measures the great-circle
// distance and applies the minimum-days rule. Accepts city names or
// raw coordinates, never a mix.
func (r *RouteService) ValidateRoute(req request_models.RouteValidationRequest) (*response_models.RouteValidationResponse, error) {
	var (
		srcLat, srcLon, dstLat, dstLon float64
		srcName, dstName               string
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
		srcLat, srcLon = src.Lat, src.Lon
		dstLat, dstLon = dst.Lat, dst.Lon
		srcName, dstName = src.Name, dst.Name

	case req.Source != nil && req.Destination != nil:
		for _, c := range []*request_models.Coordinates{req.Source, req.Destination} {
			if err := validateCoordinates(c); err != nil {
				return nil, err
			}
		}
		srcLat, srcLon = req.Source.Lat, req.Source.Lon
		dstLat, dstLon = req.Destination.Lat, req.Destination.Lon

	default:
		return nil, fmt.Errorf("%w: provide either (source_city + destination_city) or (source + destination coordinates), do not mix both formats", utils.ErrInvalidInput)
	}

	distanceKm := utils.CalculateDistance(srcLat, srcLon, dstLat, dstLon)
	feasible, minimumDays, reason := utils.IsRouteFeasible(distanceKm, req.Days)

	return &response_models.RouteValidationResponse{
		Feasible:        feasible,
		DistanceKm:      distanceKm,
		MinimumDays:     minimumDays,
		SourceCity:      srcName,
		DestinationCity: dstName,
		Reason:          reason,
	}, nil
}

func resolveCity(name, role string) (data.City, error) {
	city, ok := data.GetCityByName(name)
	if !ok {
		return data.City{}, fmt.Errorf("%w: %s city '%s' not found in database. Please use /api/locations/search to find valid cities", utils.ErrCityNotFound, role, name)
	}
	return city, nil
}

func validateCoordinates(c *request_models.Coordinates) error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %.4f out of range [-90, 90]", utils.ErrInvalidCoordinate, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %.4f out of range [-180, 180]", utils.ErrInvalidCoordinate, c.Lon)
	}
	return nil
}
