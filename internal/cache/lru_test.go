package cache

import (
	"testing"
	"time"
)

func TestGetMissingKey(t *testing.T) {
	c := NewLRUCache[int](4, time.Minute)

	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for key that was never set")
	}
}

func TestSetAndGet(t *testing.T) {
	c := NewLRUCache[string](4, time.Minute)

	c.Set("a", "alpha")
	got, ok := c.Get("a")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got != "alpha" {
		t.Errorf("got %q, want %q", got, "alpha")
	}
}

func TestExpiredEntryIsMiss(t *testing.T) {
	c := NewLRUCache[int](4, -time.Second)

	c.Set("a", 1)
	if _, ok := c.Get("a"); ok {
		t.Error("expected expired entry to be a miss")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a is now most recently used
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to survive eviction")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected c to be present")
	}
}

func TestSetExistingKeyUpdatesValue(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)

	c.Set("a", 1)
	c.Set("a", 2)

	got, ok := c.Get("a")
	if !ok || got != 2 {
		t.Errorf("got (%d, %v), want (2, true)", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestClear(t *testing.T) {
	c := NewLRUCache[int](4, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after Clear")
	}
}
