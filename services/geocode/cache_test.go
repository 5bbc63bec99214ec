package geocode

import (
	"context"
	"testing"
	"time"

	"github.com/ujwal-s-r/travel-agent-deployed/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingGeocoder struct {
	place *models.ResolvedPlace
	calls int
}

func (c *countingGeocoder) Resolve(ctx context.Context, name string) (*models.ResolvedPlace, error) {
	c.calls++
	return c.place, nil
}

func newTestCache(t *testing.T, next Geocoder) *CachedGeocoder {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCachedGeocoder(next, client, time.Hour, zap.NewNop())
}

func TestCachedGeocoderServesSecondLookupFromCache(t *testing.T) {
	next := &countingGeocoder{place: &models.ResolvedPlace{Name: "Bangalore", Latitude: 12.9716, Longitude: 77.5946}}
	cached := newTestCache(t, next)

	first, err := cached.Resolve(context.Background(), "Bangalore")
	require.NoError(t, err)
	second, err := cached.Resolve(context.Background(), "bangalore ")
	require.NoError(t, err)

	assert.Equal(t, first, second, "normalized names share a cache entry")
	assert.Equal(t, 1, next.calls)
}

func TestCachedGeocoderDoesNotCacheMisses(t *testing.T) {
	next := &countingGeocoder{place: nil}
	cached := newTestCache(t, next)

	place, err := cached.Resolve(context.Background(), "Xyzabc")
	require.NoError(t, err)
	assert.Nil(t, place)

	_, err = cached.Resolve(context.Background(), "Xyzabc")
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls, "negative results must not be cached")
}

func TestCachedGeocoderFallsThroughWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	next := &countingGeocoder{place: &models.ResolvedPlace{Name: "Paris", Latitude: 48.85, Longitude: 2.35}}
	cached := NewCachedGeocoder(next, client, time.Hour, zap.NewNop())

	mr.Close()

	place, err := cached.Resolve(context.Background(), "Paris")
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, "Paris", place.Name)
	assert.Equal(t, 1, next.calls)
}
