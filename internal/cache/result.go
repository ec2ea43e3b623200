// Package cache memoizes calculator responses in Redis. The engines are pure
// functions of their input, so serving a cached result is observably
// identical to recomputing it.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Result is a JSON result cache keyed by a digest of the canonical request.
// The zero value and a nil client are both safe: every operation degrades to
// a miss.
type Result struct {
	Client *redis.Client
	Prefix string
	TTL    time.Duration
}

// Key derives the cache key for an engine and its canonical request payload.
func (c *Result) Key(engine string, payload []byte) string {
	sum := sha256.Sum256(payload)
	return c.Prefix + engine + ":" + hex.EncodeToString(sum[:])
}

// Get unmarshals a cached result into dst. It reports whether the key
// existed.
func (c *Result) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c == nil || c.Client == nil || key == "" {
		return false, nil
	}
	data, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Set serialises v as JSON and stores it with the configured TTL.
func (c *Result) Set(ctx context.Context, key string, v any) error {
	if c == nil || c.Client == nil || key == "" {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, data, c.TTL).Err()
}
