// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

func newTestCache(capacity int, ttl time.Duration) (*LRU[int], *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}
	c := New[int](capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestLRUDefaults(t *testing.T) {
	t.Parallel()

	c := New[string](0, -1)
	if c.capacity != defaultCapacity || c.ttl != defaultTTL {
		t.Errorf("capacity = %d, ttl = %v", c.capacity, c.ttl)
	}
}

func TestLRUGetAdd(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(3, time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache hit")
	}

	c.Add("a", 1)
	c.Add("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses; want 1, 1", hits, misses)
	}
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(3, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)
	c.Get("a")
	c.Add("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should be present", k)
		}
	}
}

func TestLRUExpiry(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(3, time.Minute)
	c.Add("a", 1)

	clock.Advance(59 * time.Second)
	if _, ok := c.Get("a"); !ok {
		t.Fatal("entry expired early")
	}

	clock.Advance(time.Second)
	if _, ok := c.Get("a"); ok {
		t.Error("entry served at its expiry time")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not dropped, Len() = %d", c.Len())
	}

	c.Add("a", 2)
	clock.Advance(30 * time.Second)
	c.Add("a", 3)
	clock.Advance(45 * time.Second)
	if v, ok := c.Get("a"); !ok || v != 3 {
		t.Errorf("re-added entry: Get = %d, %v; want 3, true", v, ok)
	}
}

func TestLRURemove(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(3, time.Minute)
	c.Add("a", 1)
	if !c.Remove("a") {
		t.Error("Remove(a) = false")
	}
	if c.Remove("a") {
		t.Error("second Remove(a) = true")
	}
}

func TestLRUConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := New[int](64, time.Minute)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := strconv.Itoa((g*200 + i) % 100)
				c.Add(key, i)
				c.Get(key)
			}
		}()
	}
	wg.Wait()

	if c.Len() > 64 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}
