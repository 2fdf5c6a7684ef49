package response_models

// Allowed enum values for generated itineraries. Generation output is
// rejected when a block falls outside these sets.
var (
	ValidPeriods = map[string]bool{
		"morning":   true,
		"afternoon": true,
		"evening":   true,
	}

	ValidActivityTypes = map[string]bool{
		"sightseeing": true,
		"culture":     true,
		"food":        true,
		"relaxation":  true,
		"adventure":   true,
		"shopping":    true,
		"beach":       true,
		"nature":      true,
		"history":     true,
		"art":         true,
		"music":       true,
		"sports":      true,
	}

	ValidMealTypes = map[string]bool{
		"breakfast": true,
		"lunch":     true,
		"dinner":    true,
		"snack":     true,
		"none":      true,
	}
)

// Meal describes the dining attached to a time block.
type Meal struct {
	MealType    string `json:"meal_type"`
	CuisineType string `json:"cuisine_type"`
	DiningStyle string `json:"dining_style"`
	VegFriendly bool   `json:"veg_friendly"`
}

// DefaultMeal is the placeholder used when a block has no dining.
func DefaultMeal() Meal {
	return Meal{
		MealType:    "none",
		CuisineType: "local",
		DiningStyle: "restaurant",
		VegFriendly: true,
	}
}

// ItineraryBlock is one time block within a day plan.
type ItineraryBlock struct {
	Period          string `json:"period"`
	TimeWindow      string `json:"time_window"`
	Title           string `json:"title"`
	ActivityType    string `json:"activity_type"`
	Description     string `json:"description"`
	LogisticsHint   string `json:"logistics_hint,omitempty"`
	Meal            Meal   `json:"meal"`
	PhotographyNote string `json:"photography_note,omitempty"`
}

// DayPlan is one themed day of the itinerary.
type DayPlan struct {
	Day        int              `json:"day"`
	DayTheme   string           `json:"day_theme"`
	DaySummary string           `json:"day_summary"`
	Blocks     []ItineraryBlock `json:"blocks"`
}

// OverallStyle summarizes the trip's pace and budget.
type OverallStyle struct {
	Pace   string `json:"pace"`
	Budget string `json:"budget"`
}

// ItineraryResponse is the final validated itinerary.
type ItineraryResponse struct {
	Destination  string       `json:"destination"`
	Days         int          `json:"days"`
	OverallStyle OverallStyle `json:"overall_style"`
	Itinerary    []DayPlan    `json:"itinerary"`
}
