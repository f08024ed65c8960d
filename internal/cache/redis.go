package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"benchdash/internal/perf"
)

// DefaultTTL bounds how stale a cached perf payload may get.
const DefaultTTL = 5 * time.Minute

// PayloadCache fronts the perf API with a Redis read-through cache.
// All failures degrade to a cache miss; the cache never makes a fetch
// worse than not having a cache at all.
type PayloadCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPayloadCache connects to Redis at url (redis:// form). A zero
// ttl falls back to DefaultTTL.
func NewPayloadCache(ctx context.Context, url string, ttl time.Duration) (*PayloadCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PayloadCache{client: client, ttl: ttl}, nil
}

// Get returns the cached payload for (project, kind), if present.
func (c *PayloadCache) Get(ctx context.Context, project, kind string) (*perf.Payload, bool) {
	raw, err := c.client.Get(ctx, payloadKey(project, kind)).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("Perf cache read failed", "error", err)
		}
		return nil, false
	}

	var payload perf.Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		slog.Debug("Perf cache entry malformed", "error", err)
		return nil, false
	}
	return &payload, true
}

// Put stores the payload for (project, kind) with the cache TTL.
func (c *PayloadCache) Put(ctx context.Context, project, kind string, payload *perf.Payload) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, payloadKey(project, kind), data, c.ttl).Err(); err != nil {
		slog.Debug("Perf cache write failed", "error", err)
	}
}

// Invalidate drops the cached payload for (project, kind).
func (c *PayloadCache) Invalidate(ctx context.Context, project, kind string) {
	if err := c.client.Del(ctx, payloadKey(project, kind)).Err(); err != nil {
		slog.Debug("Perf cache invalidation failed", "error", err)
	}
}

// Close closes the Redis connection.
func (c *PayloadCache) Close() error {
	return c.client.Close()
}

func payloadKey(project, kind string) string {
	return fmt.Sprintf("perf:%s:%s", project, kind)
}
