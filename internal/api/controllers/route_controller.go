package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourapp/internal/models/request_models"
	"tourapp/internal/services"
	"tourapp/pkg/utils"
)

type RouteController struct {
	routeService services.RouteServiceInterface
}

func NewRouteController(routeService services.RouteServiceInterface) *RouteController {
	return &RouteController{
		routeService: routeService,
	}
}

// ValidateRoute godoc
// @Summary Validate route feasibility
// @Description Check whether the trip duration fits the route distance
// @Tags Route
// @Accept json
// @Produce json
// @Param request body request_models.RouteValidationRequest true "Route to validate"
// @Success 200 {object} response_models.RouteValidationResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/route/validate [post]
func (r *RouteController) ValidateRoute(c *gin.Context) {
	var req request_models.RouteValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := r.routeService.ValidateRoute(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Route validated successfully")
}

// ValidateRouteSimple handles the GET convenience form
// /api/route/validate/:source/:destination/:days.
func (r *RouteController) ValidateRouteSimple(c *gin.Context) {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil || days < 1 || days > 30 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid days (must be 1-30)")
		return
	}

	result, err := r.routeService.ValidateRoute(request_models.RouteValidationRequest{
		SourceCity:      c.Param("source"),
		DestinationCity: c.Param("destination"),
		Days:            days,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Route validated successfully")
}

func (r *RouteController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"service":     "route_feasibility",
		"method":      "haversine",
		"input_modes": []string{"city_names", "raw_coordinates"},
		"rules": gin.H{
			"0-300km":    "2 days",
			"300-700km":  "3 days",
			"700-1200km": "4 days",
			">1200km":    "5 days",
		},
	})
}
