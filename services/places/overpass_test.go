package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overpassPayload = `{
	"elements": [
		{"type": "node", "lat": 12.95, "lon": 77.58, "tags": {"name": "Lalbagh", "tourism": "attraction"}},
		{"type": "way", "center": {"lat": 13.0, "lon": 77.59}, "tags": {"name": "Bangalore Palace", "historic": "yes"}},
		{"type": "node", "lat": 12.95, "lon": 77.58, "tags": {"name": "Lalbagh", "leisure": "park"}},
		{"type": "node", "lat": 12.96, "lon": 77.57, "tags": {"tourism": "viewpoint"}},
		{"type": "node", "lat": 12.97, "lon": 77.56, "tags": {"name": "Cubbon Park"}},
		{"type": "node", "lat": 12.98, "lon": 77.55, "tags": {"name": "Bannerghatta National Park"}},
		{"type": "node", "lat": 12.99, "lon": 77.54, "tags": {"name": "Jawaharlal Nehru Planetarium"}},
		{"type": "node", "lat": 13.01, "lon": 77.53, "tags": {"name": "Vidhana Soudha"}}
	]
}`

func TestOverpassFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Contains(t, r.PostForm.Get("data"), `["tourism"]`)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(overpassPayload))
	}))
	defer server.Close()

	svc := NewOverpassService(server.URL)
	attractions, err := svc.Fetch(context.Background(), 12.9716, 77.5946, DefaultLimit)

	require.NoError(t, err)
	require.Len(t, attractions, 5, "results are capped at the limit")

	// Provider order preserved, duplicates and unnamed elements dropped.
	names := make([]string, 0, len(attractions))
	for _, a := range attractions {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{
		"Lalbagh",
		"Bangalore Palace",
		"Cubbon Park",
		"Bannerghatta National Park",
		"Jawaharlal Nehru Planetarium",
	}, names)

	// Way elements use their center point.
	assert.Equal(t, 13.0, attractions[1].Latitude)
	assert.Equal(t, 77.59, attractions[1].Longitude)
}

func TestOverpassFetchZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"elements":[]}`))
	}))
	defer server.Close()

	svc := NewOverpassService(server.URL)
	attractions, err := svc.Fetch(context.Background(), 0, 0, DefaultLimit)

	require.NoError(t, err)
	assert.NotNil(t, attractions, "zero results is a valid empty slice, not an error")
	assert.Empty(t, attractions)
}

func TestOverpassFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewOverpassService(server.URL)
	_, err := svc.Fetch(context.Background(), 0, 0, DefaultLimit)

	assert.Error(t, err)
}
