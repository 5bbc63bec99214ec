// File: services/geocode/nominatim.go
package geocode

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

// NominatimGeocoder resolves place names against the OpenStreetMap
// Nominatim search API. Ambiguous names resolve to Nominatim's first
// (highest-ranked) match.
type NominatimGeocoder struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

func NewNominatimGeocoder(baseURL, userAgent string) *NominatimGeocoder {
	return &NominatimGeocoder{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: userAgent,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve looks up a place name. It returns (nil, nil) when Nominatim has
// no match for the name.
func (g *NominatimGeocoder) Resolve(ctx context.Context, name string) (*models.ResolvedPlace, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", name)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: build request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", g.UserAgent)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocode: decode response: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad longitude %q: %w", results[0].Lon, err)
	}

	return &models.ResolvedPlace{
		Name:      shortName(results[0].DisplayName, name),
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// shortName trims a full Nominatim display name ("Bangalore, Karnataka,
// India") down to its leading segment.
func shortName(displayName, fallback string) string {
	if idx := strings.Index(displayName, ","); idx > 0 {
		return strings.TrimSpace(displayName[:idx])
	}
	if displayName != "" {
		return displayName
	}
	return fallback
}
