// Package cache provides response caching backends for the GitLab client.
//
// # Backends
//
//   - [FileCache]: one JSON file per key under a directory, for CLI use
//   - [RedisCache]: Redis-backed storage for shared deployments of the
//     query service
//   - [MongoCache]: MongoDB-backed storage with a TTL index
//   - [NullCache]: stores nothing, used by --no-cache and in tests
//
// All backends store opaque bytes with a per-entry TTL. A TTL of zero means
// the entry never expires.
//
// # Keys
//
// A [Keyer] derives cache keys. [NewScopedKeyer] prefixes every key, which
// the GitLab client uses to keep authenticated responses separate per token
// (see [TokenScope]).
package cache

import (
	"context"
	"time"
)

// Cache stores opaque values by key with a time-to-live.
//
// Get reports a miss as (nil, false, nil); expired entries are misses.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
