package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tourapp/cmd/fx/ai_fx"
	"tourapp/cmd/fx/itinerary_fx"
	"tourapp/cmd/fx/locations_fx"
	"tourapp/cmd/fx/memcache_fx"
	"tourapp/cmd/fx/route_fx"
	"tourapp/cmd/fx/travel_mode_fx"
	"tourapp/cmd/fx/trip_config_fx"
	"tourapp/internal/api/controllers"
	"tourapp/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		ai_fx.Module,
		memcache_fx.Module,
		locations_fx.Module,
		route_fx.Module,
		travel_mode_fx.Module,
		trip_config_fx.Module,
		itinerary_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	locationsController *controllers.LocationsController,
	routeController *controllers.RouteController,
	travelModeController *controllers.TravelModeController,
	tripConfigController *controllers.TripConfigController,
	itineraryController *controllers.ItineraryController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		locationsController,
		routeController,
		travelModeController,
		tripConfigController,
		itineraryController,
		adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	locationsController *controllers.LocationsController,
	routeController *controllers.RouteController,
	travelModeController *controllers.TravelModeController,
	tripConfigController *controllers.TripConfigController,
	itineraryController *controllers.ItineraryController,
	adminController *controllers.AdminController) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "AI Itinerary API is running",
			"modules": gin.H{
				"location_discovery":   "/api/locations/search",
				"route_validation":     "/api/route/validate",
				"travel_modes":         "/api/travel/modes",
				"trip_configuration":   "/api/trip/configure",
				"interest_suggestion":  "/api/interests/suggest",
				"itinerary_generation": "/api/itinerary",
			},
		})
	})

	locationsGroup := r.Group("/api/locations")
	locationsGroup.GET("/search", locationsController.SearchCities)
	locationsGroup.GET("/validate", locationsController.ValidateCity)
	locationsGroup.GET("/details/:city", locationsController.GetCityDetails)
	locationsGroup.GET("/state/:state", locationsController.GetCitiesByState)
	locationsGroup.GET("/tier/:tier", locationsController.GetCitiesByTier)
	locationsGroup.GET("/tourist", locationsController.GetTouristDestinations)
	locationsGroup.GET("/stats", locationsController.GetStats)
	locationsGroup.GET("/all", locationsController.GetAllCities)
	locationsGroup.GET("/health", locationsController.Health)

	routeGroup := r.Group("/api/route")
	routeGroup.POST("/validate", routeController.ValidateRoute)
	routeGroup.GET("/validate/:source/:destination/:days", routeController.ValidateRouteSimple)
	routeGroup.GET("/health", routeController.Health)

	travelGroup := r.Group("/api/travel")
	travelGroup.POST("/modes", travelModeController.GetTravelModes)
	travelGroup.GET("/modes/:source/:destination/:days", travelModeController.GetTravelModesSimple)
	travelGroup.GET("/health", travelModeController.Health)

	r.POST("/api/trip/configure", tripConfigController.ConfigureTrip)
	r.GET("/api/trip/health", tripConfigController.Health)
	r.POST("/api/interests/suggest", tripConfigController.SuggestInterests)

	r.POST("/api/itinerary", itineraryController.GenerateItinerary)
	r.GET("/api/itinerary/health", itineraryController.Health)

	adminGroup := r.Group("/api/admin")
	adminGroup.POST("/reset-counter", adminController.ResetPremiumCounter)
	adminGroup.GET("/stats", adminController.GetStats)
}
