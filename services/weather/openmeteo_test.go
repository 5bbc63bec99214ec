package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMeteoFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "temperature_2m,precipitation_probability", r.URL.Query().Get("current"))
		assert.Equal(t, "celsius", r.URL.Query().Get("temperature_unit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current":{"temperature_2m":24.0,"precipitation_probability":35}}`))
	}))
	defer server.Close()

	svc := NewOpenMeteoService(server.URL)
	report, err := svc.Fetch(context.Background(), 12.9716, 77.5946)

	require.NoError(t, err)
	assert.Equal(t, 24.0, report.TemperatureCelsius)
	assert.Equal(t, 35, report.PrecipitationChancePercent)
}

func TestOpenMeteoFetchMissingPrecipitation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current":{"temperature_2m":18.2}}`))
	}))
	defer server.Close()

	svc := NewOpenMeteoService(server.URL)
	report, err := svc.Fetch(context.Background(), 48.85, 2.35)

	require.NoError(t, err)
	assert.Equal(t, 18.2, report.TemperatureCelsius)
	assert.Equal(t, 0, report.PrecipitationChancePercent)
}

func TestOpenMeteoFetchMissingTemperatureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current":{}}`))
	}))
	defer server.Close()

	svc := NewOpenMeteoService(server.URL)
	report, err := svc.Fetch(context.Background(), 48.85, 2.35)

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestOpenMeteoFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := NewOpenMeteoService(server.URL)
	_, err := svc.Fetch(context.Background(), 48.85, 2.35)

	assert.Error(t, err)
}
