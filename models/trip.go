// File: models/trip.go
package models

// TripRequest is the inbound payload for the trip planning endpoint.
type TripRequest struct {
	Query string `json:"query"`
}

// Intent captures which capabilities a query is asking for and the
// place-name candidate extracted from the text. PlaceCandidate is empty
// when no plausible place name was found; it is never a guessed default.
type Intent struct {
	PlaceCandidate string
	WantsWeather   bool
	WantsPlaces    bool
}

// ResolvedPlace is a geocoded location. A nil ResolvedPlace from the
// geocoder means the place is unknown, which is a conversational outcome
// rather than an error.
type ResolvedPlace struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// WeatherReport holds current conditions at a location.
type WeatherReport struct {
	TemperatureCelsius         float64
	PrecipitationChancePercent int
}

// Attraction is a named point of interest with coordinates.
type Attraction struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TripAnswer is the complete structured result of one orchestration run,
// surfaced as-is to the presentation layer.
type TripAnswer struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`

	Place      string `json:"place,omitempty"`
	HasWeather bool   `json:"has_weather"`
	HasPlaces  bool   `json:"has_places"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Temperature         *float64 `json:"temperature,omitempty"`
	PrecipitationChance *int     `json:"precipitation_chance,omitempty"`

	Attractions           []string     `json:"attractions,omitempty"`
	AttractionsWithCoords []Attraction `json:"attractions_with_coords,omitempty"`
}
