package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourapp/internal/models/request_models"
	"tourapp/internal/services"
	"tourapp/pkg/utils"
)

type TravelModeController struct {
	travelModeService services.TravelModeServiceInterface
}

func NewTravelModeController(travelModeService services.TravelModeServiceInterface) *TravelModeController {
	return &TravelModeController{
		travelModeService: travelModeService,
	}
}

// GetTravelModes godoc
// @Summary Recommend travel modes
// @Description Distance-based mode recommendations with per-mode time estimates and preferred-mode validation
// @Tags Travel
// @Accept json
// @Produce json
// @Param request body request_models.TravelModeRequest true "Trip context"
// @Success 200 {object} response_models.TravelModeResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/travel/modes [post]
func (t *TravelModeController) GetTravelModes(c *gin.Context) {
	var req request_models.TravelModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := t.travelModeService.GetTravelModes(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Travel modes fetched successfully")
}

// GetTravelModesSimple handles the GET convenience form
// /api/travel/modes/:source/:destination/:days?preferred_mode=train.
func (t *TravelModeController) GetTravelModesSimple(c *gin.Context) {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil || days < 1 || days > 30 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid days (must be 1-30)")
		return
	}

	result, err := t.travelModeService.GetTravelModes(request_models.TravelModeRequest{
		SourceCity:      c.Param("source"),
		DestinationCity: c.Param("destination"),
		Days:            days,
		PreferredMode:   c.DefaultQuery("preferred_mode", ""),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Travel modes fetched successfully")
}

func (t *TravelModeController) Health(c *gin.Context) {
	modes := make([]string, 0, len(utils.AllTravelModes))
	for _, m := range utils.AllTravelModes {
		modes = append(modes, string(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"service":         "travel_modes",
		"input_modes":     []string{"city_names", "raw_distance"},
		"supported_modes": modes,
		"speed_assumptions": gin.H{
			"flight": "700 km/h + 3h buffer",
			"train":  "65 km/h average",
			"bus":    "45 km/h average",
			"car":    "55 km/h average",
		},
		"recommendation_logic": gin.H{
			"0-300km":    "car, bus",
			"300-700km":  "train, bus",
			"700-1200km": "train, flight",
			">1200km":    "flight, train",
		},
	})
}
