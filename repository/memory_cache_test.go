package repository

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
	if err := c.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := c.Get(ctx, "k")
	if !ok || got != "v" {
		t.Fatalf("got (%q, %v), want (\"v\", true)", got, ok)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	defer c.Stop()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	_ = c.Set(ctx, "k", "v", time.Minute)

	now = now.Add(59 * time.Second)
	if _, ok := c.Get(ctx, "k"); !ok {
		t.Fatal("expected hit before ttl")
	}

	now = now.Add(time.Second)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("expected miss at ttl")
	}
	if c.Len() != 0 {
		t.Errorf("expected expired entry to be removed, len=%d", c.Len())
	}
}

func TestMemoryCache_Overwrite(t *testing.T) {
	c := NewMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	_ = c.Set(ctx, "k", "old", time.Minute)
	_ = c.Set(ctx, "k", "new", 0)

	got, ok := c.Get(ctx, "k")
	if !ok || got != "new" {
		t.Fatalf("got (%q, %v), want (\"new\", true)", got, ok)
	}
}

func TestMemoryCache_SweepRemovesUnreadExpiredKeys(t *testing.T) {
	c := NewMemoryCache()
	defer c.Stop()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.mu.Lock()
	c.now = func() time.Time { return now }
	c.mu.Unlock()
	ctx := context.Background()

	for i := 0; i < 10000; i++ {
		_ = c.Set(ctx, fmt.Sprintf("projection:%d", i), "v", time.Minute)
	}
	_ = c.Set(ctx, "forever", "v", 0)

	c.mu.Lock()
	now = now.Add(24 * time.Hour)
	c.mu.Unlock()
	_ = c.Set(ctx, "fresh", "v", time.Minute)

	c.sweep()

	if n := c.Len(); n != 2 {
		t.Fatalf("expected only live entries to remain, len=%d", n)
	}
	if _, ok := c.Get(ctx, "forever"); !ok {
		t.Error("entry without ttl should survive the sweep")
	}
	if _, ok := c.Get(ctx, "fresh"); !ok {
		t.Error("unexpired entry should survive the sweep")
	}
}

func TestMemoryCache_StopIsIdempotent(t *testing.T) {
	c := NewMemoryCache()
	c.Stop()
	c.Stop()
}

func TestNewRedisCache_InvalidURL(t *testing.T) {
	_, err := NewRedisCache(context.Background(), "not-a-redis-url")
	if err == nil {
		t.Fatal("expected error for invalid url")
	}
}
