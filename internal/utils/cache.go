package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // redis.Nil detection
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Cache keys for the list endpoints
const (
	UsersCacheKey          = "list:users"
	FreelancerJobsCacheKey = "list:freelancer_jobs"
	EmployerJobsCacheKey   = "list:employer_jobs"
)

// ListCache is a read-through cache for list responses.
// A nil *ListCache is valid and caches nothing; Redis failures are logged, never returned.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewListCache returns nil when rdb is nil so callers can pass the result around unconditionally
func NewListCache(rdb *redis.Client, ttl time.Duration) *ListCache {
	if rdb == nil {
		return nil
	}
	return &ListCache{rdb: rdb, ttl: ttl}
}

// Get fills dest and reports true on a hit
func (c *ListCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false // Key absent or expired
	}
	if err == nil {
		err = json.Unmarshal(val, dest)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache read failed")
		return false
	}
	return true
}

// Set stores value under key for the configured TTL
func (c *ListCache) Set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}
	b, err := json.Marshal(value)
	if err == nil {
		err = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
	}
}

// Invalidate drops key so the next read goes to the database
func (c *ListCache) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache invalidation failed")
	}
}
