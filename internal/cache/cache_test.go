package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/windoze95/saltybytes-picks/internal/models"
	"github.com/windoze95/saltybytes-picks/internal/testutil"
)

func testPayload() *models.Recommendation {
	return &models.Recommendation{
		Picks:          []models.Pick{{Name: "Dal Khichdi", Link: "https://www.swiggy.com/dal", Reason: "has dal", Source: "google-cse"}},
		TargetCalories: 400,
		Activity:       models.ActivityLight,
		Taste:          models.TasteHealthy,
		UsedCSE:        true,
	}
}

func TestGet_Miss(t *testing.T) {
	c := New(nil, 0)
	if _, ok := c.Get("missing"); ok {
		t.Error("Get() on empty cache should miss")
	}
}

func TestSetGet_WithinTTL(t *testing.T) {
	clock := testutil.NewClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	c := New(NewMemoryStore(), 10*time.Minute, WithClock(clock.Now))

	c.Set("k", testPayload())
	clock.Advance(10*time.Minute - time.Millisecond)

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Get() should hit before the TTL elapses")
	}
	if got.TargetCalories != 400 || len(got.Picks) != 1 {
		t.Errorf("Get() = %+v", got)
	}
}

func TestGet_ExpiredIsEvicted(t *testing.T) {
	clock := testutil.NewClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	store := NewMemoryStore()
	c := New(store, 10*time.Minute, WithClock(clock.Now))

	c.Set("k", testPayload())
	clock.Advance(10*time.Minute + time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("Get() should miss after the TTL elapses")
	}
	if store.Len() != 0 {
		t.Errorf("store.Len() = %d, want 0 after lazy eviction", store.Len())
	}
}

func TestGet_ExactlyTTLIsExpired(t *testing.T) {
	clock := testutil.NewClock(time.Unix(0, 0))
	c := New(nil, time.Minute, WithClock(clock.Now))

	c.Set("k", testPayload())
	clock.Advance(time.Minute)

	if _, ok := c.Get("k"); ok {
		t.Error("Get() should miss when age equals the TTL")
	}
}

func TestSet_Overwrites(t *testing.T) {
	clock := testutil.NewClock(time.Unix(0, 0))
	c := New(nil, time.Minute, WithClock(clock.Now))

	c.Set("k", testPayload())
	clock.Advance(50 * time.Second)
	updated := testPayload()
	updated.TargetCalories = 700
	c.Set("k", updated)
	clock.Advance(50 * time.Second)

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Set() should restamp the entry")
	}
	if got.TargetCalories != 700 {
		t.Errorf("TargetCalories = %d, want 700", got.TargetCalories)
	}
}

func TestSetGet_CopiesPayload(t *testing.T) {
	c := New(nil, 0)
	p := testPayload()
	c.Set("k", p)
	p.Picks[0].Name = "mutated"

	got, _ := c.Get("k")
	if got.Picks[0].Name != "Dal Khichdi" {
		t.Error("cache should not alias the stored payload")
	}
	got.Picks[0].Name = "mutated again"
	again, _ := c.Get("k")
	if again.Picks[0].Name != "Dal Khichdi" {
		t.Error("cache should not alias payloads it returns")
	}
}

func TestKey_Canonical(t *testing.T) {
	a := Key(models.ParseTarget("500", "Moderate", "BALANCED"))
	b := Key(models.NewTarget(500, "moderate", "balanced"))
	c := Key(models.ParseTarget("500.0", "", ""))
	if a != b || b != c {
		t.Errorf("keys differ: %q %q %q", a, b, c)
	}
	if a != "500|moderate|balanced" {
		t.Errorf("Key() = %q", a)
	}
	if Key(models.NewTarget(500, "high", "balanced")) == a {
		t.Error("different activity should produce a different key")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(nil, time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := Key(models.NewTarget(300+i, "light", "tasty"))
			c.Set(key, testPayload())
			c.Get(key)
		}(i)
	}
	wg.Wait()
	if c.Len() != 50 {
		t.Errorf("Len() = %d, want 50", c.Len())
	}
}
