// Package cache defines the key/value cache port used by the semaphore
// client for GET response memoization and by the relay service for its own
// bookkeeping. Backends live in the memory and redis subpackages.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or its entry expired.
var ErrMiss = errors.New("cache: miss")

// Cache is a minimal key/value store with per-entry expiry (e.g. Redis).
//
// Implementations must be safe for concurrent use. Races between Get and Set
// resolve as last-write-wins; no transactional guarantee is made across a
// get-then-set sequence.
type Cache interface {
	// Ping checks if the cache backend is reachable.
	Ping(ctx context.Context) error

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Get retrieves a value by key. Returns ErrMiss when absent or expired.
	Get(ctx context.Context, key string) (string, error)

	// Del removes a key. No-op if the key does not exist.
	Del(ctx context.Context, key string) error
}
