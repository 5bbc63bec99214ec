// File: services/weather/openmeteo.go
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ujwal-s-r/travel-agent-deployed/models"
)

// Service fetches current weather for coordinates. A non-nil error means
// the capability was unavailable; the orchestrator degrades that clause of
// the answer rather than failing the request.
type Service interface {
	Fetch(ctx context.Context, latitude, longitude float64) (*models.WeatherReport, error)
}

// OpenMeteoService implements Service against the Open-Meteo forecast API.
type OpenMeteoService struct {
	BaseURL string
	Client  *http.Client
}

func NewOpenMeteoService(baseURL string) *OpenMeteoService {
	return &OpenMeteoService{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type openMeteoResponse struct {
	Current struct {
		Temperature2m            *float64 `json:"temperature_2m"`
		PrecipitationProbability *int     `json:"precipitation_probability"`
	} `json:"current"`
}

func (s *OpenMeteoService) Fetch(ctx context.Context, latitude, longitude float64) (*models.WeatherReport, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("current", "temperature_2m,precipitation_probability")
	params.Set("temperature_unit", "celsius")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("weather: decode response: %w", err)
	}

	if payload.Current.Temperature2m == nil {
		return nil, fmt.Errorf("weather: no temperature in response")
	}

	report := &models.WeatherReport{
		TemperatureCelsius: *payload.Current.Temperature2m,
	}
	if payload.Current.PrecipitationProbability != nil {
		report.PrecipitationChancePercent = *payload.Current.PrecipitationProbability
	}
	return report, nil
}
