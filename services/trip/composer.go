// File: services/trip/composer.go
package trip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ujwal-s-r/travel-agent-deployed/models"
)

// Compose renders the natural-language answer from whatever the fan-out
// delivered. A nil weather report or nil attraction slice means that
// capability was requested but unavailable; its clause is omitted rather
// than rendered as an inline error. An empty non-nil attraction slice is a
// valid zero-result and gets its own sentence.
func Compose(place string, in models.Intent, report *models.WeatherReport, attractions []models.Attraction) string {
	weatherOK := in.WantsWeather && report != nil
	placesOK := in.WantsPlaces && attractions != nil

	if !weatherOK && !placesOK {
		return fmt.Sprintf("I'm sorry, I couldn't retrieve any information about %s right now. Please try again later.", place)
	}

	var weatherClause string
	if weatherOK {
		weatherClause = fmt.Sprintf("In %s it's currently %s°C with a chance of %d%% to rain.",
			place, formatTemperature(report.TemperatureCelsius), report.PrecipitationChancePercent)
	}

	switch {
	case weatherOK && placesOK:
		if len(attractions) == 0 {
			return weatherClause + " " + noAttractions(place)
		}
		return weatherClause + " And these are the places you can go:\n" + joinNames(attractions)
	case weatherOK:
		return weatherClause
	default:
		if len(attractions) == 0 {
			return noAttractions(place)
		}
		return fmt.Sprintf("In %s these are the places you can go,\n%s", place, joinNames(attractions))
	}
}

func noAttractions(place string) string {
	return fmt.Sprintf("No attractions found near %s.", place)
}

func joinNames(attractions []models.Attraction) string {
	names := make([]string, 0, len(attractions))
	for _, a := range attractions {
		names = append(names, a.Name)
	}
	return strings.Join(names, "\n")
}

// formatTemperature drops a trailing ".0" so 24.0 renders as 24 while
// 24.5 stays 24.5.
func formatTemperature(celsius float64) string {
	return strconv.FormatFloat(celsius, 'f', -1, 64)
}
