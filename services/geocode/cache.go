// File: services/geocode/cache.go
package geocode

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/ujwal-s-r/travel-agent-deployed/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const geocodeCachePrefix = "geo:place:"

// CachedGeocoder wraps a Geocoder with a Redis read-through cache keyed by
// the normalized place name. Cache failures are soft: any Redis error
// falls through to the live geocoder. Negative lookups are not cached so
// a place that becomes resolvable isn't masked by stale misses.
type CachedGeocoder struct {
	Next   Geocoder
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func NewCachedGeocoder(next Geocoder, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedGeocoder {
	return &CachedGeocoder{Next: next, Client: client, TTL: ttl, Logger: logger}
}

func cacheKey(name string) string {
	return geocodeCachePrefix + strings.ToLower(strings.TrimSpace(name))
}

func (c *CachedGeocoder) Resolve(ctx context.Context, name string) (*models.ResolvedPlace, error) {
	key := cacheKey(name)

	if data, err := c.Client.Get(ctx, key).Result(); err == nil {
		var place models.ResolvedPlace
		if err := json.Unmarshal([]byte(data), &place); err == nil {
			return &place, nil
		}
		c.Logger.Warn("geocode cache: corrupt entry, refetching", zap.String("key", key))
	} else if err != redis.Nil {
		c.Logger.Warn("geocode cache: read failed", zap.Error(err))
	}

	place, err := c.Next.Resolve(ctx, name)
	if err != nil || place == nil {
		return place, err
	}

	if b, err := json.Marshal(place); err == nil {
		if err := c.Client.Set(ctx, key, b, c.TTL).Err(); err != nil {
			c.Logger.Warn("geocode cache: write failed", zap.Error(err))
		}
	}
	return place, nil
}
