package response_models

// TravelModeResponse carries mode recommendations, per-mode time
// estimates and the verdict on the user's preferred mode.
type TravelModeResponse struct {
	DistanceKm          int               `json:"distance_km"`
	SourceCity          string            `json:"source_city,omitempty"`
	DestinationCity     string            `json:"destination_city,omitempty"`
	RecommendedModes    []string          `json:"recommended_modes"`
	EstimatedTimes      map[string]string `json:"estimated_times"`
	PreferredModeValid  bool              `json:"preferred_mode_valid"`
	PreferredModeReason string            `json:"preferred_mode_reason,omitempty"`
}
