package response_models

import "tourapp/internal/data"

// CitySearchResponse is the autocomplete search result set.
type CitySearchResponse struct {
	Query   string      `json:"query"`
	Count   int         `json:"count"`
	Results []data.City `json:"results"`
}

// CityValidationResponse reports whether a named city exists in the
// gazetteer, with its record when it does.
type CityValidationResponse struct {
	Valid bool       `json:"valid"`
	City  *data.City `json:"city,omitempty"`
}

// CityListResponse is a plain list of cities with a count.
type CityListResponse struct {
	Count  int         `json:"count"`
	Cities []data.City `json:"cities"`
}
