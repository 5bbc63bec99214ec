// File: services/places/overpass.go
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ujwal-s-r/travel-agent-deployed/models"
)

// DefaultLimit caps how many attractions one answer carries.
const DefaultLimit = 5

// searchRadiusMeters bounds the Overpass query around the resolved place.
const searchRadiusMeters = 10000

// Service fetches points of interest near coordinates. An empty non-nil
// slice is a valid zero-result; a non-nil error means the capability was
// unavailable. Result order is the provider's relevance order.
type Service interface {
	Fetch(ctx context.Context, latitude, longitude float64, limit int) ([]models.Attraction, error)
}

// OverpassService implements Service against the Overpass API over
// OpenStreetMap tourism, park, and historic tags.
type OverpassService struct {
	Endpoint string
	Client   *http.Client
}

func NewOverpassService(endpoint string) *OverpassService {
	return &OverpassService{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type overpassElement struct {
	Type   string            `json:"type"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Tags   map[string]string `json:"tags"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

func buildQuery(latitude, longitude float64) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", searchRadiusMeters, latitude, longitude)
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];(")
	for _, selector := range []string{`["tourism"]`, `["leisure"="park"]`, `["historic"]`} {
		b.WriteString("node" + selector + around + ";")
		b.WriteString("way" + selector + around + ";")
	}
	b.WriteString(");out body center;")
	return b.String()
}

func (s *OverpassService) Fetch(ctx context.Context, latitude, longitude float64, limit int) ([]models.Attraction, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	form := url.Values{}
	form.Set("data", buildQuery(latitude, longitude))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("places: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places: unexpected status %d", resp.StatusCode)
	}

	var payload overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places: decode response: %w", err)
	}

	attractions := make([]models.Attraction, 0, limit)
	seen := make(map[string]bool)

	for _, el := range payload.Elements {
		name := el.Tags["name"]
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		lat, lon := el.Lat, el.Lon
		// Ways carry no node coordinates; use their computed center.
		if (lat == 0 && lon == 0) && el.Type == "way" && el.Center != nil {
			lat, lon = el.Center.Lat, el.Center.Lon
		}

		attractions = append(attractions, models.Attraction{
			Name:      name,
			Latitude:  lat,
			Longitude: lon,
		})
		if len(attractions) >= limit {
			break
		}
	}

	return attractions, nil
}
