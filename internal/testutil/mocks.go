package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/windoze95/saltybytes-picks/internal/search"
)

// --- MockSearchProvider ---

// MockSearchProvider is a mock implementation of search.Provider. It
// records every query it receives.
type MockSearchProvider struct {
	SearchFunc func(ctx context.Context, query string) ([]search.Result, error)

	mu      sync.Mutex
	Queries []string
}

func (m *MockSearchProvider) Search(ctx context.Context, query string) ([]search.Result, error) {
	m.mu.Lock()
	m.Queries = append(m.Queries, query)
	m.mu.Unlock()

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, fmt.Errorf("Search not configured")
}

// Calls returns the number of queries received so far.
func (m *MockSearchProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}

// --- Clock ---

// Clock is a manually advanced time source for cache tests.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a Clock at the given instant.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
