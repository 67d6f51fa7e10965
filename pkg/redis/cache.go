package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var (
	setCacheValue = Set
	getCacheValue = Get
	delCacheValue = Del
)

// JSONCache stores JSON-encoded values under a key prefix with a fixed TTL.
type JSONCache struct {
	prefix string
	ttl    time.Duration
}

// NewJSONCache creates a cache whose keys are prefix + ":" + key.
func NewJSONCache(prefix string, ttl time.Duration) *JSONCache {
	return &JSONCache{prefix: prefix, ttl: ttl}
}

func (c *JSONCache) key(key string) string {
	return c.prefix + ":" + key
}

// Get decodes the cached value for key into dest and reports whether it was present.
func (c *JSONCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := getCacheValue(ctx, c.key(key))
	if err != nil {
		if errors.Is(err, Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set encodes value and stores it for the cache TTL.
func (c *JSONCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return setCacheValue(ctx, c.key(key), string(data), c.ttl)
}

// Delete removes the cached values for keys.
func (c *JSONCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := delCacheValue(ctx, c.key(key)); err != nil {
			return err
		}
	}
	return nil
}
