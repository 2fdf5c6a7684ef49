package request_models

// TripSummary is the read-only trip context produced by configuration.
type TripSummary struct {
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	DistanceKm  int    `json:"distance_km" binding:"required"`
	TravelMode  string `json:"travel_mode" binding:"required"`
	Days        int    `json:"days" binding:"required,gte=1,lte=30"`
}

// Constraints is the normalized constraint block produced by configuration.
type Constraints struct {
	Pace            string `json:"pace" binding:"required"`
	PlacesPerDay    int    `json:"places_per_day" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	Budget          string `json:"budget" binding:"required"`
	ExperienceStyle string `json:"experience_style" binding:"required"`
	ComfortLevel    string `json:"comfort_level" binding:"required"`
}

// ItineraryRequest is the complete structured intent object fed to
// generation. Input validation happened during configuration; this
// stage trusts it.
type ItineraryRequest struct {
	TripSummary         TripSummary         `json:"trip_summary" binding:"required"`
	Constraints         Constraints         `json:"constraints" binding:"required"`
	Interests           []string            `json:"interests" binding:"required,min=1"`
	OptionalConstraints OptionalConstraints `json:"optional_constraints"`
	AIModel             string              `json:"ai_model" binding:"required"`
}
