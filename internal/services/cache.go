package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dailyjournal-app/daily-journal/internal/models"
)

const (
	// journalCacheKeyPrefix is the Redis key prefix for cached entry lists
	journalCacheKeyPrefix = "journals:"
	// journalCacheTTL bounds staleness if an invalidation is ever missed
	journalCacheTTL = 5 * time.Minute
)

// redisCommands is the slice of the redis client the cache uses.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// JournalCache keeps each user's entry list in Redis so repeated dashboard
// loads skip the document store. Every mutation invalidates the owner's key,
// so a cached read never lags a write made through this server.
//
// A nil *JournalCache is valid and disables caching; every redis failure is
// treated as a miss.
type JournalCache struct {
	client redisCommands
}

func NewJournalCache(client redisCommands) *JournalCache {
	return &JournalCache{client: client}
}

// Get returns the cached list for a user, or ok=false on a miss.
func (c *JournalCache) Get(ctx context.Context, userID string) ([]models.JournalEntry, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, journalCacheKeyPrefix+userID).Result()
	if err != nil {
		return nil, false
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// Set stores a user's entry list.
func (c *JournalCache) Set(ctx context.Context, userID string, entries []models.JournalEntry) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	c.client.Set(ctx, journalCacheKeyPrefix+userID, data, journalCacheTTL)
}

// Invalidate drops a user's cached list after a mutation.
func (c *JournalCache) Invalidate(ctx context.Context, userID string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, journalCacheKeyPrefix+userID)
}
