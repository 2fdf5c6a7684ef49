package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tourapp/internal/models/request_models"
	"tourapp/internal/models/response_models"
	"tourapp/pkg/memcache"
	"tourapp/pkg/utils"
)

// PremiumLimit caps premium model generations per server session.
const PremiumLimit = 3

const premiumUsageKey = "premium_model"

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
	PremiumUsage() (used int, limit int)
	ResetPremiumUsage()
}

type ItineraryService struct {
	aiClient utils.GenerativeClientInterface
	usage    memcache.UsageCounter
}

func NewItineraryService(aiClient utils.GenerativeClientInterface, usage memcache.UsageCounter) ItineraryServiceInterface {
	return &ItineraryService{
		aiClient: aiClient,
		usage:    usage,
	}
}

// GenerateItinerary runs the full generation pipeline: premium gate,
// prompt construction, model call, response cleanup, structural repair
// and validation, then decoding into the typed response.
func (i *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	if req.AIModel == ModelGemini25 {
		if i.usage.Count(premiumUsageKey) >= PremiumLimit {
			return nil, fmt.Errorf("%w: premium model limit reached (%d uses per session). Please use the standard model", utils.ErrPremiumLimitReached, PremiumLimit)
		}
		used := i.usage.Increment(premiumUsageKey)
		log.Printf("premium model usage: %d/%d", used, PremiumLimit)
	}

	prompt := BuildItineraryPrompt(req)

	raw, err := i.aiClient.GenerateText(ctx, req.AIModel, prompt, 10000, 0.7)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: model returned empty response", utils.ErrUnexpectedBehaviorOfAI)
	}

	cleaned := utils.CleanJSONResponse(raw)

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON from model: %v", utils.ErrMalformedAIResponse, err)
	}

	fixNullMeals(payload)

	if err := validateItineraryStructure(payload, req.TripSummary.Days); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	// Round-trip through JSON to decode the repaired map into the
	// typed response.
	repaired, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedAIResponse, err)
	}

	var itinerary response_models.ItineraryResponse
	if err := json.Unmarshal(repaired, &itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedAIResponse, err)
	}

	normalizeMeals(&itinerary)

	return &itinerary, nil
}

func (i *ItineraryService) PremiumUsage() (int, int) {
	return i.usage.Count(premiumUsageKey), PremiumLimit
}

func (i *ItineraryService) ResetPremiumUsage() {
	i.usage.Reset(premiumUsageKey)
}

// fixNullMeals replaces explicit null meals anywhere in the payload
// with the default meal object so decoding never sees a null.
func fixNullMeals(node any) {
	switch v := node.(type) {
	case map[string]any:
		if meal, ok := v["meal"]; ok && meal == nil {
			v["meal"] = map[string]any{
				"meal_type":    "none",
				"cuisine_type": "local",
				"dining_style": "restaurant",
				"veg_friendly": true,
			}
		}
		for _, child := range v {
			fixNullMeals(child)
		}
	case []any:
		for _, item := range v {
			fixNullMeals(item)
		}
	}
}

// validateItineraryStructure checks the generated payload against the
// expected shape and enum values. Blocks missing a meal get the
// placeholder injected in place.
func validateItineraryStructure(payload map[string]any, expectedDays int) error {
	for _, key := range []string{"destination", "days", "overall_style", "itinerary"} {
		if _, ok := payload[key]; !ok {
			return fmt.Errorf("missing top-level field %q", key)
		}
	}

	days, ok := payload["days"].(float64)
	if !ok || int(days) != expectedDays {
		return fmt.Errorf("days field does not match expected %d days", expectedDays)
	}

	style, ok := payload["overall_style"].(map[string]any)
	if !ok {
		return fmt.Errorf("overall_style is not an object")
	}
	for _, key := range []string{"pace", "budget"} {
		if _, ok := style[key]; !ok {
			return fmt.Errorf("overall_style missing %q", key)
		}
	}

	itinerary, ok := payload["itinerary"].([]any)
	if !ok || len(itinerary) != expectedDays {
		return fmt.Errorf("itinerary must contain exactly %d days", expectedDays)
	}

	for idx, rawDay := range itinerary {
		day, ok := rawDay.(map[string]any)
		if !ok {
			return fmt.Errorf("day %d is not an object", idx+1)
		}

		if num, ok := day["day"].(float64); !ok || int(num) != idx+1 {
			return fmt.Errorf("day %d has out-of-sequence day number", idx+1)
		}

		for _, key := range []string{"day", "day_theme", "day_summary", "blocks"} {
			if _, ok := day[key]; !ok {
				return fmt.Errorf("day %d missing field %q", idx+1, key)
			}
		}

		blocks, ok := day["blocks"].([]any)
		if !ok {
			return fmt.Errorf("day %d blocks is not an array", idx+1)
		}
		if len(blocks) < 1 {
			return fmt.Errorf("day %d has no blocks", idx+1)
		}

		for blockIdx, rawBlock := range blocks {
			block, ok := rawBlock.(map[string]any)
			if !ok {
				return fmt.Errorf("day %d block %d is not an object", idx+1, blockIdx+1)
			}

			for _, key := range []string{"period", "time_window", "title", "activity_type", "description"} {
				if _, ok := block[key]; !ok {
					return fmt.Errorf("day %d block %d missing field %q", idx+1, blockIdx+1, key)
				}
			}

			period, _ := block["period"].(string)
			if !response_models.ValidPeriods[period] {
				return fmt.Errorf("day %d block %d has invalid period %q", idx+1, blockIdx+1, period)
			}

			activityType, _ := block["activity_type"].(string)
			if !response_models.ValidActivityTypes[activityType] {
				return fmt.Errorf("day %d block %d has invalid activity_type %q", idx+1, blockIdx+1, activityType)
			}

			if meal, ok := block["meal"].(map[string]any); ok {
				if mealType, ok := meal["meal_type"].(string); ok && !response_models.ValidMealTypes[mealType] {
					return fmt.Errorf("day %d block %d has invalid meal_type %q", idx+1, blockIdx+1, mealType)
				}
			} else if _, ok := block["meal"]; !ok {
				block["meal"] = map[string]any{"meal_type": "none"}
			}
		}
	}

	return nil
}

// normalizeMeals backfills meal defaults the model left out.
func normalizeMeals(itinerary *response_models.ItineraryResponse) {
	for d := range itinerary.Itinerary {
		for b := range itinerary.Itinerary[d].Blocks {
			meal := &itinerary.Itinerary[d].Blocks[b].Meal
			if meal.MealType == "" {
				meal.MealType = "none"
			}
			if meal.CuisineType == "" {
				meal.CuisineType = "local"
			}
			if meal.DiningStyle == "" {
				meal.DiningStyle = "restaurant"
			}
		}
	}
}

const itineraryJSONTemplate = `{
  "destination": "%s",
  "days": %d,
  "overall_style": {
    "pace": "%s",
    "budget": "%s"
  },
  "itinerary": [
    {
      "day": 1,
      "day_theme": "Arrival & Exploration",
      "day_summary": "Begin your journey with an introduction to the destination",
      "blocks": [
        {
          "period": "morning",
          "time_window": "09:00-11:30",
          "title": "Welcome Activity",
          "activity_type": "sightseeing",
          "description": "Start your trip with an introductory activity.",
          "logistics_hint": "Optional practical tip",
          "meal": {
            "meal_type": "breakfast",
            "cuisine_type": "local",
            "dining_style": "restaurant",
            "veg_friendly": true
          },
          "photography_note": "Optional photography suggestion"
        },
        {
          "period": "afternoon",
          "time_window": "13:00-15:30",
          "title": "Cultural Experience",
          "activity_type": "culture",
          "description": "Explore local culture and traditions.",
          "logistics_hint": "Optional practical tip",
          "meal": {
            "meal_type": "lunch",
            "cuisine_type": "local",
            "dining_style": "restaurant",
            "veg_friendly": true
          },
          "photography_note": "Optional photography suggestion"
        },
        {
          "period": "evening",
          "time_window": "18:00-20:30",
          "title": "Evening Relaxation",
          "activity_type": "relaxation",
          "description": "Wind down after a day of exploration.",
          "logistics_hint": "Optional practical tip",
          "meal": {
            "meal_type": "dinner",
            "cuisine_type": "local",
            "dining_style": "restaurant",
            "veg_friendly": true
          },
          "photography_note": "Optional photography suggestion"
        }
      ]
    }
  ]
}`

// BuildItineraryPrompt renders the generation prompt from the
// structured intent object. The embedded JSON example pins the exact
// output schema the validator expects.
func BuildItineraryPrompt(req request_models.ItineraryRequest) string {
	var b strings.Builder

	b.WriteString("You are a professional travel planner creating a detailed, structured itinerary.\n\n")
	b.WriteString("Generate a well-paced travel itinerary using these constraints:\n\n")

	b.WriteString("TRIP SUMMARY:\n")
	fmt.Fprintf(&b, "- Source: %s\n", req.TripSummary.Source)
	fmt.Fprintf(&b, "- Destination: %s\n", req.TripSummary.Destination)
	fmt.Fprintf(&b, "- Duration: %d days\n", req.TripSummary.Days)
	fmt.Fprintf(&b, "- Travel mode: %s\n", req.TripSummary.TravelMode)
	fmt.Fprintf(&b, "- Distance: %d km\n\n", req.TripSummary.DistanceKm)

	b.WriteString("TRAVEL STYLE:\n")
	fmt.Fprintf(&b, "- Pace: %s\n", req.Constraints.Pace)
	fmt.Fprintf(&b, "- Target activities: %d places per day (approximate)\n", req.Constraints.PlacesPerDay)
	fmt.Fprintf(&b, "- Start time preference: %s mornings\n", req.Constraints.StartTime)
	fmt.Fprintf(&b, "- Budget level: %s\n", req.Constraints.Budget)
	fmt.Fprintf(&b, "- Experience style: %s\n", req.Constraints.ExperienceStyle)
	fmt.Fprintf(&b, "- Comfort level: %s\n\n", req.Constraints.ComfortLevel)

	b.WriteString("USER INTERESTS:\n")
	for _, interest := range req.Interests {
		fmt.Fprintf(&b, "- %s\n", interest)
	}
	b.WriteString("\n")

	b.WriteString("ADDITIONAL PREFERENCES:\n")
	b.WriteString(formatOptionalConstraints(req.OptionalConstraints))
	b.WriteString("\n\n")

	b.WriteString("IMPORTANT INSTRUCTIONS:\n")
	fmt.Fprintf(&b, "1. Create %d days of activities\n", req.TripSummary.Days)
	b.WriteString("2. Each day should have 2-4 time blocks\n")
	b.WriteString(`3. EVERY block must include a meal object, even if it's just {"meal_type": "none"}` + "\n")
	b.WriteString("4. Add logistics hints for practical navigation\n")
	b.WriteString("5. Note photography opportunities if relevant\n")
	b.WriteString("6. Balance activity types across days\n")
	b.WriteString("7. Consider realistic travel times between locations\n")
	b.WriteString("8. Align with the user's budget and comfort level\n\n")

	b.WriteString("========================\n")
	b.WriteString("CRITICAL ENUM ENFORCEMENT (MANDATORY)\n")
	b.WriteString("========================\n")
	b.WriteString("- You MUST use ONLY the allowed enum values listed below.\n")
	b.WriteString("- DO NOT invent or vary enum values.\n")
	b.WriteString("- If unsure, map activities using the mapping rules.\n\n")
	b.WriteString("Allowed activity_type values:\n")
	b.WriteString("sightseeing, culture, food, relaxation,\nadventure, shopping, beach, nature,\nhistory, art, music, sports\n\n")
	b.WriteString("Allowed period values:\nmorning, afternoon, evening\n\n")
	b.WriteString("Allowed meal_type values:\nbreakfast, lunch, dinner, none\n\n")
	b.WriteString("If an activity involves photography:\n- Use activity_type = sightseeing\n- Put photography details ONLY inside photography_note\n\n")
	b.WriteString("If an activity involves architecture or heritage:\n- Use activity_type = history\n\n")
	b.WriteString("If an activity involves travel or driving:\n- Use activity_type = sightseeing\n\n")
	b.WriteString("For dining_style, use ONLY these normalized values:\nstreet, café, restaurant, beachside\n\n")

	b.WriteString("STRICT RULES:\n")
	fmt.Fprintf(&b, "1. Respect the %d places per day guideline\n", req.Constraints.PlacesPerDay)
	b.WriteString("2. Do NOT invent travel routes, distances, or transportation details\n")
	b.WriteString("3. Do NOT mention specific hotel names or exact prices\n")
	fmt.Fprintf(&b, "4. Keep activities realistic and achievable for %s\n", req.TripSummary.Destination)
	b.WriteString("5. Consider travel time between activities\n")
	b.WriteString("6. Provide practical, actionable descriptions\n")
	b.WriteString("7. Return ONLY valid JSON - no markdown, no code blocks, no explanations\n")
	b.WriteString(`8. NEVER set "meal" to null - always include a meal object` + "\n")
	b.WriteString("9. STRICTLY FOLLOW the enum values above - NO EXCEPTIONS\n\n")

	b.WriteString("CRITICAL: You MUST use this exact JSON structure:\n\n")
	fmt.Fprintf(&b, itineraryJSONTemplate,
		req.TripSummary.Destination,
		req.TripSummary.Days,
		req.Constraints.Pace,
		req.Constraints.Budget,
	)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Generate the complete %d-day itinerary now:", req.TripSummary.Days)

	return b.String()
}

func formatOptionalConstraints(oc request_models.OptionalConstraints) string {
	var lines []string
	if oc.AvoidEarlyMornings {
		lines = append(lines, "- Prefer late morning starts (after 9 AM)")
	}
	if oc.PreferLessWalking {
		lines = append(lines, "- Minimize walking distances, suggest rest spots")
	}
	if oc.FamilyFriendly {
		lines = append(lines, "- Include family-friendly activities, kid-safe options")
	}
	if oc.VegetarianFriendly {
		lines = append(lines, "- Prioritize vegetarian food options")
	}
	if oc.PhotographyFocus {
		lines = append(lines, "- Highlight photography opportunities and best times")
	}
	if len(lines) == 0 {
		return "None"
	}
	return strings.Join(lines, "\n")
}
