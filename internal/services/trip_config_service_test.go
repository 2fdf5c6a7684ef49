package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourapp/internal/models/request_models"
	"tourapp/pkg/utils"
)

func validTripConfigRequest() request_models.TripConfigRequest {
	return request_models.TripConfigRequest{
		Source:      request_models.LocationInfo{Name: "Mumbai"},
		Destination: request_models.LocationInfo{Name: "Goa"},
		DistanceKm:  461,
		TravelMode:  "train",
		Days:        3,
		Pace:        PaceBalanced,
		Budget:      BudgetPremium,
		SelectedInterests: []string{
			"beaches", "local food", "nightlife", "water sports", "heritage sites",
		},
	}
}

func TestConfigureTrip(t *testing.T) {
	svc := NewTripConfigService(&mockGenerativeClient{})

	t.Run("balanced premium configuration", func(t *testing.T) {
		resp, err := svc.ConfigureTrip(validTripConfigRequest())
		require.NoError(t, err)

		assert.Equal(t, "Mumbai", resp.TripSummary.Source)
		assert.Equal(t, "Goa", resp.TripSummary.Destination)
		assert.Equal(t, 3, resp.TripSummary.Days)

		assert.Equal(t, PaceBalanced, resp.Constraints.Pace)
		assert.Equal(t, 3, resp.Constraints.PlacesPerDay)
		assert.Equal(t, "moderate", resp.Constraints.StartTime)
		assert.Equal(t, BudgetPremium, resp.Constraints.Budget)
		assert.Equal(t, "balanced", resp.Constraints.ExperienceStyle)
		assert.Equal(t, "comfortable", resp.Constraints.ComfortLevel)

		assert.Len(t, resp.Interests, 5)
		assert.Equal(t, ModelGeminiFlash, resp.AIModel)
	})

	t.Run("relaxed maps to late starts", func(t *testing.T) {
		req := validTripConfigRequest()
		req.Pace = PaceRelaxed
		req.Budget = BudgetBasic

		resp, err := svc.ConfigureTrip(req)
		require.NoError(t, err)

		assert.Equal(t, 2, resp.Constraints.PlacesPerDay)
		assert.Equal(t, "late", resp.Constraints.StartTime)
		assert.Equal(t, "popular & free attractions", resp.Constraints.ExperienceStyle)
		assert.Equal(t, "basic", resp.Constraints.ComfortLevel)
	})

	t.Run("fast luxury maps to early starts", func(t *testing.T) {
		req := validTripConfigRequest()
		req.Pace = PaceFast
		req.Budget = BudgetLuxury

		resp, err := svc.ConfigureTrip(req)
		require.NoError(t, err)

		assert.Equal(t, 4, resp.Constraints.PlacesPerDay)
		assert.Equal(t, "early", resp.Constraints.StartTime)
		assert.Equal(t, "curated & relaxed", resp.Constraints.ExperienceStyle)
		assert.Equal(t, "high", resp.Constraints.ComfortLevel)
	})

	t.Run("interests required", func(t *testing.T) {
		req := validTripConfigRequest()
		req.SelectedInterests = nil

		_, err := svc.ConfigureTrip(req)
		assert.ErrorIs(t, err, utils.ErrInterestsRequired)
	})

	t.Run("interests truncated to ten", func(t *testing.T) {
		req := validTripConfigRequest()
		req.SelectedInterests = []string{
			"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l",
		}

		resp, err := svc.ConfigureTrip(req)
		require.NoError(t, err)
		assert.Len(t, resp.Interests, 10)
		assert.Equal(t, "j", resp.Interests[9])
	})

	t.Run("invalid pace", func(t *testing.T) {
		req := validTripConfigRequest()
		req.Pace = "frantic"

		_, err := svc.ConfigureTrip(req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("invalid budget", func(t *testing.T) {
		req := validTripConfigRequest()
		req.Budget = "unlimited"

		_, err := svc.ConfigureTrip(req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("premium model passes through", func(t *testing.T) {
		req := validTripConfigRequest()
		req.AIModel = ModelGemini25

		resp, err := svc.ConfigureTrip(req)
		require.NoError(t, err)
		assert.Equal(t, ModelGemini25, resp.AIModel)
	})

	t.Run("unknown model rejected", func(t *testing.T) {
		req := validTripConfigRequest()
		req.AIModel = "gpt-99"

		_, err := svc.ConfigureTrip(req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})
}

func TestSuggestInterests(t *testing.T) {
	ctx := context.Background()
	req := request_models.InterestSuggestionRequest{
		Source:      "Mumbai",
		Destination: "Goa",
		TravelMode:  "train",
		Days:        3,
	}

	t.Run("uses model suggestions", func(t *testing.T) {
		mock := &mockGenerativeClient{
			response: `["beaches", "local food", "nightlife", "water sports", "heritage sites", "markets", "photography", "nature"]`,
		}
		svc := NewTripConfigService(mock)

		resp, err := svc.SuggestInterests(ctx, req)
		require.NoError(t, err)

		assert.Len(t, resp.Interests, 8)
		assert.Equal(t, "Goa", resp.Destination)
		assert.Equal(t, ModelGeminiFlash, mock.lastModel)
		assert.Contains(t, mock.lastPrompt, "Destination: Goa")
	})

	t.Run("strips code fences", func(t *testing.T) {
		mock := &mockGenerativeClient{
			response: "```json\n[\"beaches\", \"local food\", \"nightlife\", \"water sports\", \"heritage sites\", \"markets\", \"photography\", \"nature\"]\n```",
		}
		svc := NewTripConfigService(mock)

		resp, err := svc.SuggestInterests(ctx, req)
		require.NoError(t, err)
		assert.Len(t, resp.Interests, 8)
	})

	t.Run("falls back on model error", func(t *testing.T) {
		svc := NewTripConfigService(&mockGenerativeClient{err: errors.New("quota exceeded")})

		resp, err := svc.SuggestInterests(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, FallbackInterests, resp.Interests)
	})

	t.Run("falls back on malformed JSON", func(t *testing.T) {
		svc := NewTripConfigService(&mockGenerativeClient{response: "here are some ideas: beaches"})

		resp, err := svc.SuggestInterests(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, FallbackInterests, resp.Interests)
	})

	t.Run("falls back on too few suggestions", func(t *testing.T) {
		svc := NewTripConfigService(&mockGenerativeClient{response: `["beaches", "food"]`})

		resp, err := svc.SuggestInterests(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, FallbackInterests, resp.Interests)
	})
}
