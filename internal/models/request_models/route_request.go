package request_models

// Coordinates is a raw lat/lon pair for locations not in the gazetteer.
type Coordinates struct {
	Lat float64 `json:"lat" binding:"gte=-90,lte=90"`
	Lon float64 `json:"lon" binding:"gte=-180,lte=180"`
}

// RouteValidationRequest accepts either city names or raw coordinates,
// never a mix of both.
type RouteValidationRequest struct {
	SourceCity      string `json:"source_city"`
	DestinationCity string `json:"destination_city"`

	Source      *Coordinates `json:"source"`
	Destination *Coordinates `json:"destination"`

	Days int `json:"days" binding:"required,gte=1,lte=30"`
}
