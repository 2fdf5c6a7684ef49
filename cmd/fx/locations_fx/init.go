package locations_fx

import (
	"go.uber.org/fx"

	"tourapp/internal/api/controllers"
	"tourapp/internal/services"
)

var Module = fx.Provide(
	provideLocationService, provideLocationsController)

func provideLocationService() services.LocationServiceInterface {
	return services.NewLocationService()
}

func provideLocationsController(locationService services.LocationServiceInterface) *controllers.LocationsController {
	return controllers.NewLocationsController(locationService)
}
