package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		c := NewMemoryCache()
		c.Set(ctx, "k", "v", time.Minute)

		got, ok := c.Get(ctx, "k")
		if !ok || got != "v" {
			t.Fatalf("expected (v, true), got (%q, %v)", got, ok)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		c := NewMemoryCache()
		if _, ok := c.Get(ctx, "absent"); ok {
			t.Fatal("expected miss for absent key")
		}
	})

	t.Run("expired entry is dropped", func(t *testing.T) {
		base := time.Now()
		c := NewMemoryCache()
		c.now = func() time.Time { return base }
		c.Set(ctx, "k", "v", time.Minute)

		c.now = func() time.Time { return base.Add(2 * time.Minute) }
		if _, ok := c.Get(ctx, "k"); ok {
			t.Fatal("expected expired entry to miss")
		}

		c.mu.Lock()
		_, still := c.entries["k"]
		c.mu.Unlock()
		if still {
			t.Fatal("expected expired entry to be deleted")
		}
	})

	t.Run("overwrite refreshes ttl", func(t *testing.T) {
		base := time.Now()
		c := NewMemoryCache()
		c.now = func() time.Time { return base }
		c.Set(ctx, "k", "v1", time.Minute)

		c.now = func() time.Time { return base.Add(50 * time.Second) }
		c.Set(ctx, "k", "v2", time.Minute)

		c.now = func() time.Time { return base.Add(100 * time.Second) }
		got, ok := c.Get(ctx, "k")
		if !ok || got != "v2" {
			t.Fatalf("expected refreshed entry, got (%q, %v)", got, ok)
		}
	})
}
