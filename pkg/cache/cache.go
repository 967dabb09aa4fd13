// Package cache stores registry responses between runs.
//
// [FileCache] keeps entries as JSON files under a directory (by default
// ~/.cache/stackbump). [NullCache] disables caching. [NewScoped] gives a
// component its own key namespace on a shared backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
//
// Get returns (nil, false, nil) on a miss; expired and unreadable entries
// count as misses. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
