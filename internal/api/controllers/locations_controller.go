package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourapp/internal/services"
	"tourapp/pkg/utils"
)

type LocationsController struct {
	locationService services.LocationServiceInterface
}

func NewLocationsController(locationService services.LocationServiceInterface) *LocationsController {
	return &LocationsController{
		locationService: locationService,
	}
}

// SearchCities godoc
// @Summary Search cities
// @Description Autocomplete search over the static city gazetteer
// @Tags Locations
// @Produce json
// @Param q query string true "Search query (min 2 characters)"
// @Param limit query int false "Max results (default: 7)"
// @Success 200 {object} response_models.CitySearchResponse
// @Router /api/locations/search [get]
func (l *LocationsController) SearchCities(c *gin.Context) {
	query := c.Query("q")

	limit := 0
	if limitStr := c.DefaultQuery("limit", ""); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	result := l.locationService.SearchCities(query, limit)
	utils.RespondSuccess(c, result, "Cities fetched successfully")
}

// ValidateCity godoc
// @Summary Validate a city name
// @Tags Locations
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} response_models.CityValidationResponse
// @Router /api/locations/validate [get]
func (l *LocationsController) ValidateCity(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'city' is required")
		return
	}

	result := l.locationService.ValidateCity(city)
	utils.RespondSuccess(c, result, "City validated")
}

// GetCityDetails godoc
// @Summary Get city details
// @Tags Locations
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} data.City
// @Failure 400 {object} utils.APIResponse
// @Router /api/locations/details/{city} [get]
func (l *LocationsController) GetCityDetails(c *gin.Context) {
	city, err := l.locationService.GetCityDetails(c.Param("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City details fetched successfully")
}

func (l *LocationsController) GetAllCities(c *gin.Context) {
	utils.RespondSuccess(c, l.locationService.GetAllCities(), "Cities fetched successfully")
}

func (l *LocationsController) GetCitiesByState(c *gin.Context) {
	result, err := l.locationService.GetCitiesByState(c.Param("state"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Cities fetched successfully")
}

func (l *LocationsController) GetCitiesByTier(c *gin.Context) {
	tier, err := strconv.Atoi(c.Param("tier"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tier")
		return
	}

	result, err := l.locationService.GetCitiesByTier(tier)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Cities fetched successfully")
}

func (l *LocationsController) GetTouristDestinations(c *gin.Context) {
	utils.RespondSuccess(c, l.locationService.GetTouristDestinations(), "Tourist destinations fetched successfully")
}

func (l *LocationsController) GetStats(c *gin.Context) {
	utils.RespondSuccess(c, l.locationService.GetStats(), "Gazetteer stats fetched successfully")
}

func (l *LocationsController) Health(c *gin.Context) {
	stats := l.locationService.GetStats()
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"service":      "location_discovery",
		"method":       "static_database",
		"total_cities": stats.TotalCities,
		"ready":        true,
	})
}
