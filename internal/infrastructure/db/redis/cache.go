package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	nameListKey = "supplies:names"
	releaserKey = "users:releaser:%d"
	cacheTTL    = 15 * time.Minute
)

// Cache provides read-through caching for the distinct item-name list and
// for user display names resolved during ledger attribution.
type Cache struct {
	client *redis.Client
}

// NewCache creates a Cache wrapping the given Redis client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get returns the cached item-name list. ok is false on a miss.
func (c *Cache) Get(ctx context.Context) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, nameListKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("name cache get: %w", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, false, fmt.Errorf("name cache decode: %w", err)
	}
	return names, true, nil
}

// Set stores the item-name list (expires after cacheTTL).
func (c *Cache) Set(ctx context.Context, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("name cache encode: %w", err)
	}
	return c.client.Set(ctx, nameListKey, raw, cacheTTL).Err()
}

// Invalidate drops the cached item-name list.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, nameListKey).Err()
}

// GetName returns the cached display name for a user. ok is false on a miss.
func (c *Cache) GetName(ctx context.Context, userID int64) (string, bool, error) {
	name, err := c.client.Get(ctx, fmt.Sprintf(releaserKey, userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("releaser cache get: %w", err)
	}
	return name, true, nil
}

// SetName stores a user's display name (expires after cacheTTL).
func (c *Cache) SetName(ctx context.Context, userID int64, name string) error {
	return c.client.Set(ctx, fmt.Sprintf(releaserKey, userID), name, cacheTTL).Err()
}

// InvalidateName drops the cached display name for a user.
func (c *Cache) InvalidateName(ctx context.Context, userID int64) error {
	return c.client.Del(ctx, fmt.Sprintf(releaserKey, userID)).Err()
}
