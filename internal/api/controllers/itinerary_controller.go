package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourapp/internal/models/request_models"
	"tourapp/internal/services"
	"tourapp/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate an itinerary
// @Description AI-generated day-by-day itinerary from a finalized trip configuration
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Structured intent object"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/itinerary [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}

func (i *ItineraryController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "itinerary_generation",
		"endpoint": "/api/itinerary",
		"features": []string{
			"flexible_time_blocks",
			"day_themes_and_summaries",
			"activity_typing",
			"enhanced_meal_info",
			"photography_notes",
			"logistics_hints",
		},
		"supported_models": []string{services.ModelGeminiFlash, services.ModelGemini25},
		"max_days":         30,
	})
}
