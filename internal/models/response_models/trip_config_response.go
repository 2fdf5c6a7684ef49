package response_models

import "tourapp/internal/models/request_models"

// TripConfigResponse is the finalized structured intent object handed
// to itinerary generation. Its shape matches the generation request so
// clients can feed it straight back in.
type TripConfigResponse struct {
	TripSummary         request_models.TripSummary         `json:"trip_summary"`
	Constraints         request_models.Constraints         `json:"constraints"`
	Interests           []string                           `json:"interests"`
	OptionalConstraints request_models.OptionalConstraints `json:"optional_constraints"`
	AIModel             string                             `json:"ai_model"`
}

// InterestSuggestionResponse carries AI-suggested interest categories.
type InterestSuggestionResponse struct {
	Interests   []string `json:"interests"`
	Destination string   `json:"destination"`
}
