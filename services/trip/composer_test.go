package trip

import (
	"testing"

	"github.com/ujwal-s-r/travel-agent-deployed/models"

	"github.com/stretchr/testify/assert"
)

func both() models.Intent {
	return models.Intent{PlaceCandidate: "Bangalore", WantsWeather: true, WantsPlaces: true}
}

func sampleWeather() *models.WeatherReport {
	return &models.WeatherReport{TemperatureCelsius: 24, PrecipitationChancePercent: 35}
}

func sampleAttractions() []models.Attraction {
	return []models.Attraction{
		{Name: "Lalbagh", Latitude: 12.95, Longitude: 77.58},
		{Name: "Bangalore Palace", Latitude: 13.0, Longitude: 77.59},
	}
}

func TestComposeWeatherOnly(t *testing.T) {
	in := models.Intent{WantsWeather: true}

	got := Compose("Bangalore", in, sampleWeather(), nil)

	assert.Equal(t, "In Bangalore it's currently 24°C with a chance of 35% to rain.", got)
}

func TestComposeWeatherFractionalTemperature(t *testing.T) {
	in := models.Intent{WantsWeather: true}
	report := &models.WeatherReport{TemperatureCelsius: 24.5, PrecipitationChancePercent: 10}

	got := Compose("Oslo", in, report, nil)

	assert.Equal(t, "In Oslo it's currently 24.5°C with a chance of 10% to rain.", got)
}

func TestComposePlacesOnly(t *testing.T) {
	in := models.Intent{WantsPlaces: true}

	got := Compose("Bangalore", in, nil, sampleAttractions())

	assert.Equal(t, "In Bangalore these are the places you can go,\nLalbagh\nBangalore Palace", got)
}

func TestComposeBoth(t *testing.T) {
	got := Compose("Bangalore", both(), sampleWeather(), sampleAttractions())

	assert.Equal(t,
		"In Bangalore it's currently 24°C with a chance of 35% to rain."+
			" And these are the places you can go:\nLalbagh\nBangalore Palace",
		got)
}

func TestComposeZeroAttractionsIsNotOmitted(t *testing.T) {
	in := models.Intent{WantsPlaces: true}

	got := Compose("Bangalore", in, nil, []models.Attraction{})

	assert.Equal(t, "No attractions found near Bangalore.", got)
}

func TestComposeBothWithZeroAttractions(t *testing.T) {
	got := Compose("Bangalore", both(), sampleWeather(), []models.Attraction{})

	assert.Equal(t,
		"In Bangalore it's currently 24°C with a chance of 35% to rain. No attractions found near Bangalore.",
		got)
}

func TestComposeUnavailableClauseOmitted(t *testing.T) {
	// Weather requested but unavailable: only the places clause renders.
	got := Compose("Bangalore", both(), nil, sampleAttractions())

	assert.Equal(t, "In Bangalore these are the places you can go,\nLalbagh\nBangalore Palace", got)
}

func TestComposeAllUnavailable(t *testing.T) {
	got := Compose("Bangalore", both(), nil, nil)

	assert.Equal(t,
		"I'm sorry, I couldn't retrieve any information about Bangalore right now. Please try again later.",
		got)
}
