package services

import (
	"fmt"

	"tourapp/internal/data"
	"tourapp/internal/models/response_models"
	"tourapp/pkg/utils"
)

const defaultSearchLimit = 7

type LocationServiceInterface interface {
	SearchCities(query string, limit int) response_models.CitySearchResponse
	ValidateCity(name string) response_models.CityValidationResponse
	GetCityDetails(name string) (*data.City, error)
	GetAllCities() response_models.CityListResponse
	GetCitiesByState(state string) (response_models.CityListResponse, error)
	GetCitiesByTier(tier int) (response_models.CityListResponse, error)
	GetTouristDestinations() response_models.CityListResponse
	GetStats() data.Stats
}

type LocationService struct{}

func NewLocationService() LocationServiceInterface {
	return &LocationService{}
}

func (l *LocationService) SearchCities(query string, limit int) response_models.CitySearchResponse {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	results := data.SearchCities(query, limit)
	return response_models.CitySearchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	}
}

func (l *LocationService) ValidateCity(name string) response_models.CityValidationResponse {
	city, ok := data.GetCityByName(name)
	if !ok {
		return response_models.CityValidationResponse{Valid: false}
	}
	return response_models.CityValidationResponse{Valid: true, City: &city}
}

func (l *LocationService) GetCityDetails(name string) (*data.City, error) {
	city, ok := data.GetCityByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: city '%s' not found in database", utils.ErrCityNotFound, name)
	}
	return &city, nil
}

func (l *LocationService) GetAllCities() response_models.CityListResponse {
	return response_models.CityListResponse{
		Count:  len(data.IndianCities),
		Cities: data.IndianCities,
	}
}

func (l *LocationService) GetCitiesByState(state string) (response_models.CityListResponse, error) {
	cities := data.GetCitiesByState(state)
	if len(cities) == 0 {
		return response_models.CityListResponse{}, fmt.Errorf("%w: no cities found for state '%s'", utils.ErrCityNotFound, state)
	}
	return response_models.CityListResponse{Count: len(cities), Cities: cities}, nil
}

func (l *LocationService) GetCitiesByTier(tier int) (response_models.CityListResponse, error) {
	if tier != 1 && tier != 2 {
		return response_models.CityListResponse{}, fmt.Errorf("%w: tier must be 1 or 2", utils.ErrInvalidInput)
	}
	cities := data.GetCitiesByTier(tier)
	return response_models.CityListResponse{Count: len(cities), Cities: cities}, nil
}

func (l *LocationService) GetTouristDestinations() response_models.CityListResponse {
	cities := data.TouristDestinations()
	return response_models.CityListResponse{Count: len(cities), Cities: cities}
}

func (l *LocationService) GetStats() data.Stats {
	return data.GetStats()
}
