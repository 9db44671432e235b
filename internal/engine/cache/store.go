package cache

import (
	"errors"
	"sync"
	"time"

	"github.com/rshade/ghgfocus/internal/engine"
)

// Common cache errors.
var (
	ErrCacheNotFound   = errors.New("cache entry not found")
	ErrCacheExpired    = errors.New("cache entry expired")
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
	ErrCacheDisabled   = errors.New("cache is disabled")
)

// entry is one stored result with its expiry bookkeeping.
type entry struct {
	result    *engine.Result
	createdAt time.Time
	ttl       time.Duration
}

// expired reports whether the entry is past its TTL at now.
// A zero TTL never expires.
func (e entry) expired(now time.Time) bool {
	if e.ttl <= 0 {
		return false
	}
	return now.After(e.createdAt.Add(e.ttl))
}

// Store is an in-memory result cache with TTL expiration.
// Thread-safe for concurrent sessions.
type Store struct {
	enabled bool
	ttl     time.Duration

	mu      sync.RWMutex
	entries map[string]entry

	// now is the clock, swappable in tests.
	now func() time.Time
}

// NewStore creates a result cache. A disabled store rejects every operation
// with ErrCacheDisabled so callers fall through to a fresh recomputation.
// ttl of zero means entries never expire.
func NewStore(enabled bool, ttl time.Duration) *Store {
	return &Store{
		enabled: enabled,
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached result for key.
// Returns ErrCacheNotFound when absent and ErrCacheExpired past the TTL;
// expired entries are dropped on access.
func (s *Store) Get(key string) (*engine.Result, error) {
	if !s.enabled {
		return nil, ErrCacheDisabled
	}
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrCacheNotFound
	}
	if e.expired(s.now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, ErrCacheExpired
	}
	return e.result, nil
}

// Set stores a result under key, overwriting any previous entry.
func (s *Store) Set(key string, result *engine.Result) error {
	if !s.enabled {
		return ErrCacheDisabled
	}
	if key == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{result: result, createdAt: s.now(), ttl: s.ttl}
	return nil
}

// Delete removes the entry for key. Removing an absent key is a no-op.
func (s *Store) Delete(key string) error {
	if !s.enabled {
		return ErrCacheDisabled
	}
	if key == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	if !s.enabled {
		return ErrCacheDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
	return nil
}

// Len returns the number of live entries, counting expired ones not yet
// dropped.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
