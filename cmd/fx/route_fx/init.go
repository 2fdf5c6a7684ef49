package route_fx

import (
	"go.uber.org/fx"

	"tourapp/internal/api/controllers"
	"tourapp/internal/services"
)

var Module = fx.Provide(
	provideRouteService, provideRouteController)

func provideRouteService() services.RouteServiceInterface {
	return services.NewRouteService()
}

func provideRouteController(routeService services.RouteServiceInterface) *controllers.RouteController {
	return controllers.NewRouteController(routeService)
}
