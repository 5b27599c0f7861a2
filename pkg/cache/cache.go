package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/M0nkiiii/Screentime-Management/pkg/logger"
)

// Cache is a read-through cache for aggregated dashboard responses. It is a
// convenience with a TTL, not a consistency mechanism: a stale read within
// the TTL window is acceptable to the dashboard consumers.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	Invalidate(ctx context.Context, keys ...string)
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache builds a Cache over an established redis client. Cache
// failures are logged and degrade to misses; they never fail a request.
func NewRedisCache(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) bool {
	body, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WithContext(ctx).Warnf("cache: get failed key=%s error=%v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(body, dest); err != nil {
		logger.WithContext(ctx).Warnf("cache: decode failed key=%s error=%v", key, err)
		return false
	}
	return true
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}) {
	body, err := json.Marshal(value)
	if err != nil {
		logger.WithContext(ctx).Warnf("cache: encode failed key=%s error=%v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, body, c.ttl).Err(); err != nil {
		logger.WithContext(ctx).Warnf("cache: set failed key=%s error=%v", key, err)
	}
}

func (c *redisCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.WithContext(ctx).Warnf("cache: invalidate failed keys=%v error=%v", keys, err)
	}
}
