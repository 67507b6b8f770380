// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *MemoryCache {
	t.Helper()
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "key1", []byte("value1"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, err := c.Get(ctx, "key1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(val) != "value1" {
		t.Errorf("Get = %q, want value1", val)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := newTestCache(t)

	_, err := c.Get(context.Background(), "missing")
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "key1", []byte("value1"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := c.Get(ctx, "key1"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after expiry = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_ = c.Set(ctx, "key1", []byte("value1"), 0)
	if err := c.Delete(ctx, "key1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, "key1"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after delete = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_DeleteByPrefix(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_ = c.Set(ctx, "render:p1:a", []byte("1"), 0)
	_ = c.Set(ctx, "render:p1:b", []byte("2"), 0)
	_ = c.Set(ctx, "render:p2:a", []byte("3"), 0)

	if err := c.DeleteByPrefix(ctx, "render:p1:"); err != nil {
		t.Fatalf("DeleteByPrefix: %v", err)
	}

	if _, err := c.Get(ctx, "render:p1:a"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("prefixed key survived: %v", err)
	}
	if _, err := c.Get(ctx, "render:p2:a"); err != nil {
		t.Errorf("unrelated key dropped: %v", err)
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_ = c.Set(ctx, "key1", []byte("1"), 0)
	_ = c.Set(ctx, "key2", []byte("2"), 0)

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if has, _ := c.Has(ctx, "key1"); has {
		t.Error("key1 survived Clear")
	}
	if has, _ := c.Has(ctx, "key2"); has {
		t.Error("key2 survived Clear")
	}
}

func TestMemoryCache_CopyOnGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_ = c.Set(ctx, "key1", []byte("abc"), 0)

	val, _ := c.Get(ctx, "key1")
	val[0] = 'X'

	again, _ := c.Get(ctx, "key1")
	if string(again) != "abc" {
		t.Errorf("cached value mutated: %q", again)
	}
}

func TestMemoryCache_Closed(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	_ = c.Close()

	if _, err := c.Get(context.Background(), "x"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Get after Close = %v, want ErrCacheClosed", err)
	}
	if err := c.Set(context.Background(), "x", nil, 0); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Set after Close = %v, want ErrCacheClosed", err)
	}
}

func TestMemoryCache_Stats(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_ = c.Set(ctx, "key1", []byte("value1"), 0)
	_, _ = c.Get(ctx, "key1")
	_, _ = c.Get(ctx, "missing")

	stats := c.Stats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.Sets != 1 {
		t.Errorf("Sets = %d, want 1", stats.Sets)
	}
	if stats.Items != 1 {
		t.Errorf("Items = %d, want 1", stats.Items)
	}
}

func TestRenderCache(t *testing.T) {
	c := newTestCache(t)
	rc := NewRenderCache(c, time.Minute)
	ctx := context.Background()

	updated := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	if _, err := rc.Get(ctx, "p1", "pg1", updated); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get on empty cache = %v, want ErrCacheMiss", err)
	}

	if err := rc.Set(ctx, "p1", "pg1", updated, "<html>doc</html>"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	html, err := rc.Get(ctx, "p1", "pg1", updated)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if html != "<html>doc</html>" {
		t.Errorf("Get = %q", html)
	}

	// A newer update timestamp misses by construction.
	if _, err := rc.Get(ctx, "p1", "pg1", updated.Add(time.Second)); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get with newer timestamp = %v, want ErrCacheMiss", err)
	}

	if err := rc.InvalidateProject(ctx, "p1"); err != nil {
		t.Fatalf("InvalidateProject: %v", err)
	}
	if _, err := rc.Get(ctx, "p1", "pg1", updated); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after invalidation = %v, want ErrCacheMiss", err)
	}
}
