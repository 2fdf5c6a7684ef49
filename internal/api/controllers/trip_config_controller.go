package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourapp/internal/models/request_models"
	"tourapp/internal/services"
	"tourapp/pkg/utils"
)

type TripConfigController struct {
	tripConfigService services.TripConfigServiceInterface
}

func NewTripConfigController(tripConfigService services.TripConfigServiceInterface) *TripConfigController {
	return &TripConfigController{
		tripConfigService: tripConfigService,
	}
}

// ConfigureTrip godoc
// @Summary Finalize trip constraints
// @Description Convert user choices into the structured intent object for generation
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.TripConfigRequest true "User configuration"
// @Success 200 {object} response_models.TripConfigResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trip/configure [post]
func (t *TripConfigController) ConfigureTrip(c *gin.Context) {
	var req request_models.TripConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := t.tripConfigService.ConfigureTrip(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Trip configured successfully")
}

// SuggestInterests godoc
// @Summary Suggest travel interests
// @Description Destination-aware interest categories, AI-backed with a static fallback
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.InterestSuggestionRequest true "Trip context"
// @Success 200 {object} response_models.InterestSuggestionResponse
// @Router /api/interests/suggest [post]
func (t *TripConfigController) SuggestInterests(c *gin.Context) {
	var req request_models.InterestSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := t.tripConfigService.SuggestInterests(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Interests suggested successfully")
}

func (t *TripConfigController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "trip_configuration",
		"endpoints": gin.H{
			"suggest_interests": "/api/interests/suggest",
			"configure_trip":    "/api/trip/configure",
		},
		"ai_usage":       "Only for interest suggestion",
		"pace_options":   []string{services.PaceRelaxed, services.PaceBalanced, services.PaceFast},
		"budget_options": []string{services.BudgetBasic, services.BudgetPremium, services.BudgetLuxury},
		"ai_models":      []string{services.ModelGeminiFlash, services.ModelGemini25},
	})
}
