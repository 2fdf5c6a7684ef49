package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourapp/internal/services"
)

// AdminController exposes the premium usage counter for testing.
type AdminController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewAdminController(itineraryService services.ItineraryServiceInterface) *AdminController {
	return &AdminController{
		itineraryService: itineraryService,
	}
}

func (a *AdminController) ResetPremiumCounter(c *gin.Context) {
	a.itineraryService.ResetPremiumUsage()
	used, limit := a.itineraryService.PremiumUsage()
	c.JSON(http.StatusOK, gin.H{
		"message":       "Premium counter reset",
		"premium_usage": used,
		"premium_limit": limit,
	})
}

func (a *AdminController) GetStats(c *gin.Context) {
	used, limit := a.itineraryService.PremiumUsage()
	c.JSON(http.StatusOK, gin.H{
		"premium_usage": used,
		"premium_limit": limit,
		"remaining":     limit - used,
	})
}
