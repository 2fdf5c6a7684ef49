package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourapp/internal/models/request_models"
	"tourapp/pkg/utils"
)

func TestValidateRouteWithCityNames(t *testing.T) {
	svc := NewRouteService()

	t.Run("feasible short trip", func(t *testing.T) {
		resp, err := svc.ValidateRoute(request_models.RouteValidationRequest{
			SourceCity:      "Delhi",
			DestinationCity: "Agra",
			Days:            2,
		})
		require.NoError(t, err)

		assert.True(t, resp.Feasible)
		assert.Equal(t, 192, resp.DistanceKm)
		assert.Equal(t, 2, resp.MinimumDays)
		assert.Equal(t, "Delhi", resp.SourceCity)
		assert.Equal(t, "Agra", resp.DestinationCity)
		assert.Empty(t, resp.Reason)
	})

	t.Run("infeasible cross-country trip", func(t *testing.T) {
		resp, err := svc.ValidateRoute(request_models.RouteValidationRequest{
			SourceCity:      "Delhi",
			DestinationCity: "Bangalore",
			Days:            2,
		})
		require.NoError(t, err)

		assert.False(t, resp.Feasible)
		assert.Equal(t, 1750, resp.DistanceKm)
		assert.Equal(t, 5, resp.MinimumDays)
		assert.Contains(t, resp.Reason, "Recommended minimum is 5 days for a 1750km journey")
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		resp, err := svc.ValidateRoute(request_models.RouteValidationRequest{
			SourceCity:      "mumbai",
			DestinationCity: "GOA",
			Days:            3,
		})
		require.NoError(t, err)
		assert.Equal(t, "Mumbai", resp.SourceCity)
		assert.Equal(t, "Goa", resp.DestinationCity)
	})

	t.Run("unknown source city", func(t *testing.T) {
		_, err := svc.ValidateRoute(request_models.RouteValidationRequest{
			SourceCity:      "Atlantis",
			DestinationCity: "Goa",
			Days:            3,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrCityNotFound)
		assert.Contains(t, err.Error(), "Atlantis")
	})
}

func TestValidateRouteWithCoordinates(t *testing.T) {
	svc := NewRouteService()

	t.Run("raw coordinates", func(t *testing.T) {
		resp, err := svc.ValidateRoute(request_models.RouteValidationRequest{
			Source:      &request_models.Coordinates{Lat: 28.7041, Lon: 77.1025},
			Destination: &request_models.Coordinates{Lat: 27.1767, Lon: 78.0081},
			Days:        2,
		})
		require.NoError(t, err)

		assert.True(t, resp.Feasible)
		assert.Equal(t, 192, resp.DistanceKm)
		assert.Empty(t, resp.SourceCity)
		assert.Empty(t, resp.DestinationCity)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := svc.ValidateRoute(request_models.RouteValidationRequest{
			Source:      &request_models.Coordinates{Lat: 95.0, Lon: 77.1025},
			Destination: &request_models.Coordinates{Lat: 27.1767, Lon: 78.0081},
			Days:        2,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCoordinate)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := svc.ValidateRoute(request_models.RouteValidationRequest{
			Source:      &request_models.Coordinates{Lat: 28.7041, Lon: 77.1025},
			Destination: &request_models.Coordinates{Lat: 27.1767, Lon: -181.0},
			Days:        2,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCoordinate)
	})
}

func TestValidateRouteInputModes(t *testing.T) {
	svc := NewRouteService()

	t.Run("missing both input modes", func(t *testing.T) {
		_, err := svc.ValidateRoute(request_models.RouteValidationRequest{Days: 3})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("partial city input falls through to error", func(t *testing.T) {
		_, err := svc.ValidateRoute(request_models.RouteValidationRequest{
			SourceCity: "Delhi",
			Days:       3,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})
}
