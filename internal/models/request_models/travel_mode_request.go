package request_models

// TravelModeRequest accepts either city names or a pre-calculated
// distance. PreferredMode is optional and validated when present.
type TravelModeRequest struct {
	SourceCity      string `json:"source_city"`
	DestinationCity string `json:"destination_city"`

	DistanceKm int `json:"distance_km" binding:"omitempty,gte=1,lte=5000"`

	Days          int    `json:"days" binding:"required,gte=1,lte=30"`
	PreferredMode string `json:"preferred_mode"`
}
