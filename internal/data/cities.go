// Package data holds the static Indian city gazetteer shared across the
// backend: tier-1 metros, tier-2 urban centres and popular tourist
// destinations. Loaded once, never mutated at runtime.
package data

import "strings"

type City struct {
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Tier    int     `json:"tier"`
	Country string  `json:"country"`
	Tourist bool    `json:"tourist,omitempty"`
}

type Stats struct {
	TotalCities         int `json:"total_cities"`
	Tier1               int `json:"tier_1"`
	Tier2               int `json:"tier_2"`
	TouristDestinations int `json:"tourist_destinations"`
	StatesCovered       int `json:"states_covered"`
}

var IndianCities = []City{
	// Tier 1 (metropolitan)
	{Name: "Mumbai", State: "Maharashtra", Lat: 19.0760, Lon: 72.8777, Tier: 1, Country: "India"},
	{Name: "Delhi", State: "Delhi", Lat: 28.7041, Lon: 77.1025, Tier: 1, Country: "India"},
	{Name: "Bangalore", State: "Karnataka", Lat: 12.9716, Lon: 77.5946, Tier: 1, Country: "India"},
	{Name: "Kolkata", State: "West Bengal", Lat: 22.5726, Lon: 88.3639, Tier: 1, Country: "India"},
	{Name: "Chennai", State: "Tamil Nadu", Lat: 13.0827, Lon: 80.2707, Tier: 1, Country: "India"},
	{Name: "Hyderabad", State: "Telangana", Lat: 17.3850, Lon: 78.4867, Tier: 1, Country: "India"},
	{Name: "Pune", State: "Maharashtra", Lat: 18.5204, Lon: 73.8567, Tier: 1, Country: "India"},
	{Name: "Ahmedabad", State: "Gujarat", Lat: 23.0225, Lon: 72.5714, Tier: 1, Country: "India"},

	// Tier 2 (major urban centres)
	{Name: "Jaipur", State: "Rajasthan", Lat: 26.9124, Lon: 75.7873, Tier: 2, Country: "India"},
	{Name: "Surat", State: "Gujarat", Lat: 21.1702, Lon: 72.8311, Tier: 2, Country: "India"},
	{Name: "Lucknow", State: "Uttar Pradesh", Lat: 26.8467, Lon: 80.9462, Tier: 2, Country: "India"},
	{Name: "Kanpur", State: "Uttar Pradesh", Lat: 26.4499, Lon: 80.3319, Tier: 2, Country: "India"},
	{Name: "Nagpur", State: "Maharashtra", Lat: 21.1458, Lon: 79.0882, Tier: 2, Country: "India"},
	{Name: "Indore", State: "Madhya Pradesh", Lat: 22.7196, Lon: 75.8577, Tier: 2, Country: "India"},
	{Name: "Thane", State: "Maharashtra", Lat: 19.2183, Lon: 72.9781, Tier: 2, Country: "India"},
	{Name: "Bhopal", State: "Madhya Pradesh", Lat: 23.2599, Lon: 77.4126, Tier: 2, Country: "India"},
	{Name: "Visakhapatnam", State: "Andhra Pradesh", Lat: 17.6868, Lon: 83.2185, Tier: 2, Country: "India"},
	{Name: "Patna", State: "Bihar", Lat: 25.5941, Lon: 85.1376, Tier: 2, Country: "India"},
	{Name: "Vadodara", State: "Gujarat", Lat: 22.3072, Lon: 73.1812, Tier: 2, Country: "India"},
	{Name: "Ludhiana", State: "Punjab", Lat: 30.9010, Lon: 75.8573, Tier: 2, Country: "India"},
	{Name: "Agra", State: "Uttar Pradesh", Lat: 27.1767, Lon: 78.0081, Tier: 2, Country: "India"},
	{Name: "Nashik", State: "Maharashtra", Lat: 19.9975, Lon: 73.7898, Tier: 2, Country: "India"},
	{Name: "Meerut", State: "Uttar Pradesh", Lat: 28.9845, Lon: 77.7064, Tier: 2, Country: "India"},
	{Name: "Rajkot", State: "Gujarat", Lat: 22.3039, Lon: 70.8022, Tier: 2, Country: "India"},
	{Name: "Varanasi", State: "Uttar Pradesh", Lat: 25.3176, Lon: 82.9739, Tier: 2, Country: "India"},
	{Name: "Srinagar", State: "Jammu and Kashmir", Lat: 34.0837, Lon: 74.7973, Tier: 2, Country: "India"},
	{Name: "Aurangabad", State: "Maharashtra", Lat: 19.8762, Lon: 75.3433, Tier: 2, Country: "India"},
	{Name: "Amritsar", State: "Punjab", Lat: 31.6340, Lon: 74.8723, Tier: 2, Country: "India"},
	{Name: "Prayagraj", State: "Uttar Pradesh", Lat: 25.4358, Lon: 81.8463, Tier: 2, Country: "India"},
	{Name: "Ranchi", State: "Jharkhand", Lat: 23.3441, Lon: 85.3096, Tier: 2, Country: "India"},
	{Name: "Coimbatore", State: "Tamil Nadu", Lat: 11.0168, Lon: 76.9558, Tier: 2, Country: "India"},
	{Name: "Jabalpur", State: "Madhya Pradesh", Lat: 23.1815, Lon: 79.9864, Tier: 2, Country: "India"},
	{Name: "Gwalior", State: "Madhya Pradesh", Lat: 26.2183, Lon: 78.1828, Tier: 2, Country: "India"},
	{Name: "Vijayawada", State: "Andhra Pradesh", Lat: 16.5062, Lon: 80.6480, Tier: 2, Country: "India"},
	{Name: "Jodhpur", State: "Rajasthan", Lat: 26.2389, Lon: 73.0243, Tier: 2, Country: "India"},
	{Name: "Madurai", State: "Tamil Nadu", Lat: 9.9252, Lon: 78.1198, Tier: 2, Country: "India"},
	{Name: "Raipur", State: "Chhattisgarh", Lat: 21.2514, Lon: 81.6296, Tier: 2, Country: "India"},
	{Name: "Kota", State: "Rajasthan", Lat: 25.2138, Lon: 75.8648, Tier: 2, Country: "India"},
	{Name: "Chandigarh", State: "Chandigarh", Lat: 30.7333, Lon: 76.7794, Tier: 2, Country: "India"},
	{Name: "Guwahati", State: "Assam", Lat: 26.1445, Lon: 91.7362, Tier: 2, Country: "India"},
	{Name: "Mysore", State: "Karnataka", Lat: 12.2958, Lon: 76.6394, Tier: 2, Country: "India"},
	{Name: "Tiruchirappalli", State: "Tamil Nadu", Lat: 10.7905, Lon: 78.7047, Tier: 2, Country: "India"},
	{Name: "Bhubaneswar", State: "Odisha", Lat: 20.2961, Lon: 85.8245, Tier: 2, Country: "India"},
	{Name: "Kochi", State: "Kerala", Lat: 9.9312, Lon: 76.2673, Tier: 2, Country: "India"},
	{Name: "Dehradun", State: "Uttarakhand", Lat: 30.3165, Lon: 78.0322, Tier: 2, Country: "India"},
	{Name: "Kolhapur", State: "Maharashtra", Lat: 16.7050, Lon: 74.2433, Tier: 2, Country: "India"},
	{Name: "Ajmer", State: "Rajasthan", Lat: 26.4499, Lon: 74.6399, Tier: 2, Country: "India"},
	{Name: "Ujjain", State: "Madhya Pradesh", Lat: 23.1765, Lon: 75.7885, Tier: 2, Country: "India"},
	{Name: "Siliguri", State: "West Bengal", Lat: 26.7271, Lon: 88.3953, Tier: 2, Country: "India"},
	{Name: "Jammu", State: "Jammu and Kashmir", Lat: 32.7266, Lon: 74.8570, Tier: 2, Country: "India"},
	{Name: "Mangalore", State: "Karnataka", Lat: 12.9141, Lon: 74.8560, Tier: 2, Country: "India"},

	// Tourist destinations
	{Name: "Goa", State: "Goa", Lat: 15.2993, Lon: 74.1240, Tier: 2, Country: "India", Tourist: true},
	{Name: "Pondicherry", State: "Puducherry", Lat: 11.9416, Lon: 79.8083, Tier: 2, Country: "India", Tourist: true},
	{Name: "Shimla", State: "Himachal Pradesh", Lat: 31.1048, Lon: 77.1734, Tier: 2, Country: "India", Tourist: true},
	{Name: "Manali", State: "Himachal Pradesh", Lat: 32.2396, Lon: 77.1887, Tier: 2, Country: "India", Tourist: true},
	{Name: "Darjeeling", State: "West Bengal", Lat: 27.0410, Lon: 88.2663, Tier: 2, Country: "India", Tourist: true},
	{Name: "Ooty", State: "Tamil Nadu", Lat: 11.4064, Lon: 76.6932, Tier: 2, Country: "India", Tourist: true},
	{Name: "Gangtok", State: "Sikkim", Lat: 27.3389, Lon: 88.6065, Tier: 2, Country: "India", Tourist: true},
	{Name: "Rishikesh", State: "Uttarakhand", Lat: 30.0869, Lon: 78.2676, Tier: 2, Country: "India", Tourist: true},
	{Name: "Haridwar", State: "Uttarakhand", Lat: 29.9457, Lon: 78.1642, Tier: 2, Country: "India", Tourist: true},
	{Name: "Mussoorie", State: "Uttarakhand", Lat: 30.4598, Lon: 78.0644, Tier: 2, Country: "India", Tourist: true},
	{Name: "Nainital", State: "Uttarakhand", Lat: 29.3803, Lon: 79.4636, Tier: 2, Country: "India", Tourist: true},
	{Name: "Mount Abu", State: "Rajasthan", Lat: 24.5926, Lon: 72.7156, Tier: 2, Country: "India", Tourist: true},
	{Name: "Kodaikanal", State: "Tamil Nadu", Lat: 10.2381, Lon: 77.4892, Tier: 2, Country: "India", Tourist: true},
	{Name: "Munnar", State: "Kerala", Lat: 10.0889, Lon: 77.0595, Tier: 2, Country: "India", Tourist: true},
	{Name: "Alleppey", State: "Kerala", Lat: 9.4981, Lon: 76.3388, Tier: 2, Country: "India", Tourist: true},
	{Name: "Kovalam", State: "Kerala", Lat: 8.4004, Lon: 76.9788, Tier: 2, Country: "India", Tourist: true},
	{Name: "Leh", State: "Ladakh", Lat: 34.1526, Lon: 77.5771, Tier: 2, Country: "India", Tourist: true},
	{Name: "Khajuraho", State: "Madhya Pradesh", Lat: 24.8318, Lon: 79.9199, Tier: 2, Country: "India", Tourist: true},
	{Name: "Hampi", State: "Karnataka", Lat: 15.3350, Lon: 76.4600, Tier: 2, Country: "India", Tourist: true},
	{Name: "Mahabalipuram", State: "Tamil Nadu", Lat: 12.6269, Lon: 80.1932, Tier: 2, Country: "India", Tourist: true},
	{Name: "Rameswaram", State: "Tamil Nadu", Lat: 9.2876, Lon: 79.3129, Tier: 2, Country: "India", Tourist: true},
	{Name: "Puri", State: "Odisha", Lat: 19.8135, Lon: 85.8312, Tier: 2, Country: "India", Tourist: true},
	{Name: "Konark", State: "Odisha", Lat: 19.8876, Lon: 86.0945, Tier: 2, Country: "India", Tourist: true},
	{Name: "Dwarka", State: "Gujarat", Lat: 22.2442, Lon: 68.9685, Tier: 2, Country: "India", Tourist: true},
	{Name: "Somnath", State: "Gujarat", Lat: 20.8880, Lon: 70.4013, Tier: 2, Country: "India", Tourist: true},
	{Name: "Pushkar", State: "Rajasthan", Lat: 26.4899, Lon: 74.5511, Tier: 2, Country: "India", Tourist: true},
	{Name: "Jaisalmer", State: "Rajasthan", Lat: 26.9157, Lon: 70.9083, Tier: 2, Country: "India", Tourist: true},
	{Name: "Port Blair", State: "Andaman and Nicobar Islands", Lat: 11.6234, Lon: 92.7265, Tier: 2, Country: "India", Tourist: true},
	{Name: "Coorg", State: "Karnataka", Lat: 12.4244, Lon: 75.7382, Tier: 2, Country: "India", Tourist: true},
	{Name: "Wayanad", State: "Kerala", Lat: 11.6854, Lon: 76.1320, Tier: 2, Country: "India", Tourist: true},
	{Name: "Gokarna", State: "Karnataka", Lat: 14.5479, Lon: 74.3188, Tier: 2, Country: "India", Tourist: true},
	{Name: "Dharamshala", State: "Himachal Pradesh", Lat: 32.2190, Lon: 76.3234, Tier: 2, Country: "India", Tourist: true},
}

// SearchCities matches case-insensitively by substring. Queries shorter
// than 2 characters return nothing; results keep dataset order.
func SearchCities(query string, limit int) []City {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 2 {
		return []City{}
	}

	matches := make([]City, 0, limit)
	for _, city := range IndianCities {
		if strings.Contains(strings.ToLower(city.Name), q) {
			matches = append(matches, city)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

// GetCityByName returns the city with the exact (case-insensitive) name.
func GetCityByName(name string) (City, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, city := range IndianCities {
		if strings.ToLower(city.Name) == n {
			return city, true
		}
	}
	return City{}, false
}

func GetCitiesByState(state string) []City {
	s := strings.ToLower(strings.TrimSpace(state))
	var cities []City
	for _, city := range IndianCities {
		if strings.ToLower(city.State) == s {
			cities = append(cities, city)
		}
	}
	return cities
}

func GetCitiesByTier(tier int) []City {
	var cities []City
	for _, city := range IndianCities {
		if city.Tier == tier {
			cities = append(cities, city)
		}
	}
	return cities
}

func TouristDestinations() []City {
	var cities []City
	for _, city := range IndianCities {
		if city.Tourist {
			cities = append(cities, city)
		}
	}
	return cities
}

func ValidateCityExists(name string) bool {
	_, ok := GetCityByName(name)
	return ok
}

func GetStats() Stats {
	states := make(map[string]struct{})
	for _, city := range IndianCities {
		states[city.State] = struct{}{}
	}
	return Stats{
		TotalCities:         len(IndianCities),
		Tier1:               len(GetCitiesByTier(1)),
		Tier2:               len(GetCitiesByTier(2)),
		TouristDestinations: len(TouristDestinations()),
		StatesCovered:       len(states),
	}
}
