package travel_mode_fx

import (
	"go.uber.org/fx"

	"tourapp/internal/api/controllers"
	"tourapp/internal/services"
)

var Module = fx.Provide(
	provideTravelModeService, provideTravelModeController)

func provideTravelModeService() services.TravelModeServiceInterface {
	return services.NewTravelModeService()
}

func provideTravelModeController(travelModeService services.TravelModeServiceInterface) *controllers.TravelModeController {
	return controllers.NewTravelModeController(travelModeService)
}
