package trip_config_fx

import (
	"go.uber.org/fx"

	"tourapp/internal/api/controllers"
	"tourapp/internal/services"
	"tourapp/pkg/utils"
)

var Module = fx.Provide(
	provideTripConfigService, provideTripConfigController)

func provideTripConfigService(aiClient utils.GenerativeClientInterface) services.TripConfigServiceInterface {
	return services.NewTripConfigService(aiClient)
}

func provideTripConfigController(tripConfigService services.TripConfigServiceInterface) *controllers.TripConfigController {
	return controllers.NewTripConfigController(tripConfigService)
}
