// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"github.com/ujwal-s-r/travel-agent-deployed/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the Redis client backing the geocode cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. The cache is optional:
// when REDIS_ADDR is unset or the server is unreachable the client is
// left nil and callers skip caching.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		GetLogger().Info("Redis not configured, geocode caching disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Failed to connect to Redis, geocode caching disabled", zap.Error(err))
		return
	}
	CacheClient = client
}

// GetCacheClient returns the cache client, or nil when caching is disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
