// Package memory provides a process-local cache backed by a map with
// per-entry expiry. Useful for tests and single-process deployments where
// running Redis would be overkill.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/kitabist/semaphore-go/cache"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Store is an in-memory cache.Cache implementation. Expired entries are
// evicted lazily on read.
type Store struct {
	mu    sync.RWMutex
	items map[string]entry
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{items: make(map[string]entry)}
}

// Ping always succeeds; the store lives in-process.
func (s *Store) Ping(ctx context.Context) error { return nil }

// Set stores a value with the given TTL, replacing any existing entry.
func (s *Store) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Get retrieves a live value by key, or cache.ErrMiss.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return "", cache.ErrMiss
	}

	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if cur, ok := s.items[key]; ok && time.Now().After(cur.expiresAt) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return "", cache.ErrMiss
	}

	return e.value, nil
}

// Del removes a key. No-op if absent.
func (s *Store) Del(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

var _ cache.Cache = (*Store)(nil)
