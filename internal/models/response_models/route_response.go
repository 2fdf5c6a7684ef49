package response_models

// RouteValidationResponse reports the feasibility verdict for a route.
// City names are empty when the request came in as raw coordinates.
type RouteValidationResponse struct {
	Feasible        bool   `json:"feasible"`
	DistanceKm      int    `json:"distance_km"`
	MinimumDays     int    `json:"minimum_days"`
	SourceCity      string `json:"source_city,omitempty"`
	DestinationCity string `json:"destination_city,omitempty"`
	Reason          string `json:"reason,omitempty"`
}
