package sector

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"starforge-server/internal/shared/redis"
)

// Cache keeps serialized sectors in Redis in front of Postgres. A nil client
// (Redis disabled) degrades to a permanent miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "sector_cache"),
	}
}

func cacheKey(id string) string {
	return "sector:" + id
}

// Get returns the cached sector, or nil on a miss. Cache errors are logged
// and treated as misses; the database remains the source of truth.
func (c *Cache) Get(ctx context.Context, id string) *Sector {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		return nil
	}

	var sec Sector
	if err := json.Unmarshal(data, &sec); err != nil {
		c.logger.Warn("Failed to unmarshal cached sector", "error", err, "sector_id", id)
		return nil
	}

	sec.RebuildIndexes()
	sec.RebuildDistances()
	return &sec
}

// Set stores a sector under its id with the configured TTL.
func (c *Cache) Set(ctx context.Context, sec *Sector) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(sec)
	if err != nil {
		c.logger.Warn("Failed to marshal sector for cache", "error", err, "sector_id", sec.ID)
		return
	}

	if err := c.client.Set(ctx, cacheKey(sec.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to cache sector", "error", err, "sector_id", sec.ID)
	}
}
