package cache

import (
	"context"
	"encoding/json"
	"time"

	"oncall-directory-backend/internal/logger"

	"github.com/go-redis/redis/v8"
)

const opTimeout = 200 * time.Millisecond

// ResolutionCache is a TTL-bounded read-through cache for resolved on-call
// answers. It is best-effort: every failure degrades to a cache miss and a
// log line, never to a request error.
type ResolutionCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// New creates a resolution cache. A nil cache is returned when addr is
// empty; callers treat that as caching disabled.
func New(addr, password string, db int, ttl time.Duration) *ResolutionCache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &ResolutionCache{
		client: client,
		ttl:    ttl,
		log:    logger.New().WithField("component", "cache"),
	}
}

// Key builds the cache key for one resolution: specialty, plan (with the
// no-plan case kept distinct from any real plan value), and day.
func Key(specialty string, plan *string, day string) string {
	p := "-"
	if plan != nil {
		p = *plan
	}
	return "oncall:" + specialty + ":" + p + ":" + day
}

// Get loads a cached resolution into dest, reporting whether it was present
func (c *ResolutionCache) Get(key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WithError(err).Warn("cache get failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.WithError(err).Warn("cache entry corrupt, dropping")
		return false
	}
	return true
}

// Set stores a resolution under the key with the configured TTL
func (c *ResolutionCache) Set(key string, value interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.WithError(err).Warn("cache marshal failed")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.WithError(err).Warn("cache set failed")
	}
}

// InvalidateDay drops every cached resolution for a calendar day, across
// all specialties and plans. Called after a reconciliation batch touches
// the day.
func (c *ResolutionCache) InvalidateDay(day string) {
	if c == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	keys, err := c.client.Keys(ctx, "oncall:*:"+day).Result()
	if err != nil {
		c.log.WithError(err).Warn("cache invalidation scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.WithError(err).Warn("cache invalidation failed")
	}
}

// Ping verifies the redis connection at startup
func (c *ResolutionCache) Ping() error {
	if c == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.client.Ping(ctx).Err()
}

// Close releases the redis connection
func (c *ResolutionCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
