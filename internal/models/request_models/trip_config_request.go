package request_models

// LocationInfo names a city without carrying coordinates.
type LocationInfo struct {
	Name string `json:"name" binding:"required"`
}

// OptionalConstraints are soft preferences forwarded to generation.
type OptionalConstraints struct {
	AvoidEarlyMornings bool `json:"avoid_early_mornings"`
	PreferLessWalking  bool `json:"prefer_less_walking"`
	FamilyFriendly     bool `json:"family_friendly"`
	VegetarianFriendly bool `json:"vegetarian_friendly"`
	PhotographyFocus   bool `json:"photography_focus"`
}

// TripConfigRequest is the full user configuration to finalize into a
// structured intent object.
type TripConfigRequest struct {
	Source      LocationInfo `json:"source" binding:"required"`
	Destination LocationInfo `json:"destination" binding:"required"`
	DistanceKm  int          `json:"distance_km" binding:"required,gte=1,lte=5000"`
	TravelMode  string       `json:"travel_mode" binding:"required"`
	Days        int          `json:"days" binding:"required,gte=1,lte=30"`

	Pace   string `json:"pace" binding:"required"`
	Budget string `json:"budget" binding:"required"`

	SelectedInterests   []string            `json:"selected_interests"`
	OptionalConstraints OptionalConstraints `json:"optional_constraints"`

	AIModel string `json:"ai_model"`
}

// InterestSuggestionRequest carries the trip context for AI interest
// suggestion.
type InterestSuggestionRequest struct {
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	TravelMode  string `json:"travel_mode" binding:"required"`
	Days        int    `json:"days" binding:"required,gte=1,lte=30"`
}
