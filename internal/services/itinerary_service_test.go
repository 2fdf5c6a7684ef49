package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourapp/internal/models/request_models"
	"tourapp/internal/models/response_models"
	"tourapp/pkg/memcache"
	"tourapp/pkg/utils"
)

func validItineraryRequest(days int) request_models.ItineraryRequest {
	return request_models.ItineraryRequest{
		TripSummary: request_models.TripSummary{
			Source:      "Mumbai",
			Destination: "Goa",
			DistanceKm:  461,
			TravelMode:  "train",
			Days:        days,
		},
		Constraints: request_models.Constraints{
			Pace:            PaceBalanced,
			PlacesPerDay:    3,
			StartTime:       "moderate",
			Budget:          BudgetPremium,
			ExperienceStyle: "balanced",
			ComfortLevel:    "comfortable",
		},
		Interests: []string{"beaches", "local food", "nightlife"},
		OptionalConstraints: request_models.OptionalConstraints{
			FamilyFriendly:   true,
			PhotographyFocus: true,
		},
		AIModel: ModelGeminiFlash,
	}
}

func sampleBlock(period, mealType string) map[string]any {
	return map[string]any{
		"period":        period,
		"time_window":   "09:00-11:30",
		"title":         "Beach Walk",
		"activity_type": "beach",
		"description":   "A relaxed stroll along the shore.",
		"meal": map[string]any{
			"meal_type":    mealType,
			"cuisine_type": "local",
			"dining_style": "beachside",
			"veg_friendly": true,
		},
	}
}

func sampleItinerary(days int) map[string]any {
	plans := make([]any, 0, days)
	for d := 1; d <= days; d++ {
		plans = append(plans, map[string]any{
			"day":         d,
			"day_theme":   fmt.Sprintf("Day %d theme", d),
			"day_summary": fmt.Sprintf("Day %d summary", d),
			"blocks": []any{
				sampleBlock("morning", "breakfast"),
				sampleBlock("afternoon", "lunch"),
				sampleBlock("evening", "dinner"),
			},
		})
	}
	return map[string]any{
		"destination":   "Goa",
		"days":          days,
		"overall_style": map[string]any{"pace": "balanced", "budget": "premium"},
		"itinerary":     plans,
	}
}

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func newItineraryService(mock *mockGenerativeClient) ItineraryServiceInterface {
	return NewItineraryService(mock, memcache.NewUsageCounter())
}

func TestGenerateItinerary(t *testing.T) {
	ctx := context.Background()

	t.Run("end to end three day trip", func(t *testing.T) {
		mock := &mockGenerativeClient{response: marshal(t, sampleItinerary(3))}
		svc := newItineraryService(mock)

		resp, err := svc.GenerateItinerary(ctx, validItineraryRequest(3))
		require.NoError(t, err)

		assert.Equal(t, "Goa", resp.Destination)
		assert.Equal(t, 3, resp.Days)
		assert.Equal(t, "balanced", resp.OverallStyle.Pace)
		require.Len(t, resp.Itinerary, 3)
		for i, day := range resp.Itinerary {
			assert.Equal(t, i+1, day.Day)
			assert.NotEmpty(t, day.Blocks)
		}

		assert.Equal(t, ModelGeminiFlash, mock.lastModel)
		assert.EqualValues(t, 10000, mock.lastMaxTok)
		assert.InDelta(t, 0.7, mock.lastTemp, 0.001)
	})

	t.Run("accepts markdown-fenced output", func(t *testing.T) {
		fenced := "```json\n" + marshal(t, sampleItinerary(2)) + "\n```"
		svc := newItineraryService(&mockGenerativeClient{response: fenced})

		resp, err := svc.GenerateItinerary(ctx, validItineraryRequest(2))
		require.NoError(t, err)
		assert.Len(t, resp.Itinerary, 2)
	})

	t.Run("repairs explicit null meal", func(t *testing.T) {
		payload := sampleItinerary(1)
		day := payload["itinerary"].([]any)[0].(map[string]any)
		day["blocks"].([]any)[0].(map[string]any)["meal"] = nil

		svc := newItineraryService(&mockGenerativeClient{response: marshal(t, payload)})

		resp, err := svc.GenerateItinerary(ctx, validItineraryRequest(1))
		require.NoError(t, err)

		meal := resp.Itinerary[0].Blocks[0].Meal
		assert.Equal(t, response_models.DefaultMeal(), meal)
	})

	t.Run("injects placeholder for missing meal", func(t *testing.T) {
		payload := sampleItinerary(1)
		day := payload["itinerary"].([]any)[0].(map[string]any)
		delete(day["blocks"].([]any)[0].(map[string]any), "meal")

		svc := newItineraryService(&mockGenerativeClient{response: marshal(t, payload)})

		resp, err := svc.GenerateItinerary(ctx, validItineraryRequest(1))
		require.NoError(t, err)

		meal := resp.Itinerary[0].Blocks[0].Meal
		assert.Equal(t, "none", meal.MealType)
		assert.Equal(t, "local", meal.CuisineType)
		assert.Equal(t, "restaurant", meal.DiningStyle)
	})

	t.Run("rejects day count mismatch", func(t *testing.T) {
		svc := newItineraryService(&mockGenerativeClient{response: marshal(t, sampleItinerary(2))})

		_, err := svc.GenerateItinerary(ctx, validItineraryRequest(3))
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrUnexpectedBehaviorOfAI)
	})

	t.Run("rejects invalid period", func(t *testing.T) {
		payload := sampleItinerary(1)
		day := payload["itinerary"].([]any)[0].(map[string]any)
		day["blocks"].([]any)[0].(map[string]any)["period"] = "night"

		svc := newItineraryService(&mockGenerativeClient{response: marshal(t, payload)})

		_, err := svc.GenerateItinerary(ctx, validItineraryRequest(1))
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrUnexpectedBehaviorOfAI)
		assert.Contains(t, err.Error(), `invalid period "night"`)
	})

	t.Run("rejects invalid activity type", func(t *testing.T) {
		payload := sampleItinerary(1)
		day := payload["itinerary"].([]any)[0].(map[string]any)
		day["blocks"].([]any)[0].(map[string]any)["activity_type"] = "hiking"

		svc := newItineraryService(&mockGenerativeClient{response: marshal(t, payload)})

		_, err := svc.GenerateItinerary(ctx, validItineraryRequest(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid activity_type "hiking"`)
	})

	t.Run("rejects out-of-sequence day numbers", func(t *testing.T) {
		payload := sampleItinerary(2)
		payload["itinerary"].([]any)[1].(map[string]any)["day"] = 5

		svc := newItineraryService(&mockGenerativeClient{response: marshal(t, payload)})

		_, err := svc.GenerateItinerary(ctx, validItineraryRequest(2))
		assert.ErrorIs(t, err, utils.ErrUnexpectedBehaviorOfAI)
	})

	t.Run("rejects empty response", func(t *testing.T) {
		svc := newItineraryService(&mockGenerativeClient{response: "   "})

		_, err := svc.GenerateItinerary(ctx, validItineraryRequest(3))
		assert.ErrorIs(t, err, utils.ErrUnexpectedBehaviorOfAI)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		svc := newItineraryService(&mockGenerativeClient{response: "{not json"})

		_, err := svc.GenerateItinerary(ctx, validItineraryRequest(3))
		assert.ErrorIs(t, err, utils.ErrMalformedAIResponse)
	})

	t.Run("rejects missing top-level field", func(t *testing.T) {
		payload := sampleItinerary(1)
		delete(payload, "overall_style")

		svc := newItineraryService(&mockGenerativeClient{response: marshal(t, payload)})

		_, err := svc.GenerateItinerary(ctx, validItineraryRequest(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"overall_style"`)
	})
}

func TestGenerateItineraryPremiumGate(t *testing.T) {
	ctx := context.Background()

	t.Run("standard model never gated", func(t *testing.T) {
		mock := &mockGenerativeClient{response: "{}"}
		svc := newItineraryService(mock)

		for i := 0; i < PremiumLimit+2; i++ {
			svc.GenerateItinerary(ctx, validItineraryRequest(3))
		}
		used, _ := svc.PremiumUsage()
		assert.Equal(t, 0, used)
	})

	t.Run("premium model limited per session", func(t *testing.T) {
		mock := &mockGenerativeClient{response: marshal(t, sampleItinerary(3))}
		svc := newItineraryService(mock)

		req := validItineraryRequest(3)
		req.AIModel = ModelGemini25

		for i := 0; i < PremiumLimit; i++ {
			_, err := svc.GenerateItinerary(ctx, req)
			require.NoError(t, err)
		}

		_, err := svc.GenerateItinerary(ctx, req)
		assert.ErrorIs(t, err, utils.ErrPremiumLimitReached)

		used, limit := svc.PremiumUsage()
		assert.Equal(t, PremiumLimit, used)
		assert.Equal(t, PremiumLimit, limit)
	})

	t.Run("reset reopens the gate", func(t *testing.T) {
		mock := &mockGenerativeClient{response: marshal(t, sampleItinerary(3))}
		svc := newItineraryService(mock)

		req := validItineraryRequest(3)
		req.AIModel = ModelGemini25

		for i := 0; i < PremiumLimit; i++ {
			_, err := svc.GenerateItinerary(ctx, req)
			require.NoError(t, err)
		}

		svc.ResetPremiumUsage()

		_, err := svc.GenerateItinerary(ctx, req)
		assert.NoError(t, err)
	})
}

func TestBuildItineraryPrompt(t *testing.T) {
	prompt := BuildItineraryPrompt(validItineraryRequest(3))

	assert.Contains(t, prompt, "- Destination: Goa")
	assert.Contains(t, prompt, "- Duration: 3 days")
	assert.Contains(t, prompt, "- Pace: balanced")
	assert.Contains(t, prompt, "- beaches")
	assert.Contains(t, prompt, "Include family-friendly activities")
	assert.Contains(t, prompt, "Highlight photography opportunities")
	assert.Contains(t, prompt, "Allowed period values:\nmorning, afternoon, evening")
	assert.Contains(t, prompt, `"destination": "Goa"`)
	assert.Contains(t, prompt, "Generate the complete 3-day itinerary now:")
}

func TestBuildItineraryPromptNoOptionalConstraints(t *testing.T) {
	req := validItineraryRequest(2)
	req.OptionalConstraints = request_models.OptionalConstraints{}

	prompt := BuildItineraryPrompt(req)
	assert.Contains(t, prompt, "ADDITIONAL PREFERENCES:\nNone")
}
