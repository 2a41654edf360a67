// Package cache memoizes recommendation payloads for a bounded time.
//
// Entries are evicted lazily when read after expiry. There is no capacity
// bound and no background sweep, so memory grows with the number of
// distinct keys seen over the process lifetime.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/windoze95/saltybytes-picks/internal/models"
)

// DefaultTTL is how long a payload stays fresh.
const DefaultTTL = 10 * time.Minute

// Entry is a stored payload and the time it was stored.
type Entry struct {
	Value    *models.Recommendation
	StoredAt time.Time
}

// Store is the key-value container behind a ResponseCache. Implementations
// must be safe for concurrent use.
type Store interface {
	Load(key string) (Entry, bool)
	Save(key string, entry Entry)
	Delete(key string)
	Len() int
}

// MemoryStore is a mutex-guarded map.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (s *MemoryStore) Load(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok
}

func (s *MemoryStore) Save(key string, entry Entry) {
	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// ResponseCache is a TTL cache of recommendation payloads.
type ResponseCache struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// Option configures a ResponseCache.
type Option func(*ResponseCache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *ResponseCache) {
		c.now = now
	}
}

// New creates a ResponseCache over store. A nil store gets a MemoryStore and
// a non-positive ttl gets DefaultTTL.
func New(store Store, ttl time.Duration, opts ...Option) *ResponseCache {
	if store == nil {
		store = NewMemoryStore()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &ResponseCache{store: store, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns a copy of the payload stored under key if it is younger than
// the TTL. Expired entries are deleted.
func (c *ResponseCache) Get(key string) (*models.Recommendation, bool) {
	e, ok := c.store.Load(key)
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.StoredAt) >= c.ttl {
		c.store.Delete(key)
		return nil, false
	}
	return e.Value.Clone(), true
}

// Set stores a copy of value under key, replacing any existing entry.
func (c *ResponseCache) Set(key string, value *models.Recommendation) {
	c.store.Save(key, Entry{Value: value.Clone(), StoredAt: c.now()})
}

// Len reports how many entries the store holds, expired ones included.
func (c *ResponseCache) Len() int {
	return c.store.Len()
}

// Key builds the canonical cache key for a resolved target.
func Key(target models.Target) string {
	return fmt.Sprintf("%d|%s|%s", target.Calories, target.Activity, target.Taste)
}
