package itinerary_fx

import (
	"go.uber.org/fx"

	"tourapp/internal/api/controllers"
	"tourapp/internal/services"
	"tourapp/pkg/memcache"
	"tourapp/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService, provideItineraryController, provideAdminController)

func provideItineraryService(aiClient utils.GenerativeClientInterface, usage memcache.UsageCounter) services.ItineraryServiceInterface {
	return services.NewItineraryService(aiClient, usage)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}

func provideAdminController(itineraryService services.ItineraryServiceInterface) *controllers.AdminController {
	return controllers.NewAdminController(itineraryService)
}
