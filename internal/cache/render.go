// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"fmt"
	"time"
)

// RenderCache caches assembled HTML documents for previews. Keys carry the
// project's update timestamp, so a stale entry can never be served for an
// edited project even before invalidation runs.
type RenderCache struct {
	cache Cache
	ttl   time.Duration
}

// NewRenderCache wraps a cache backend for rendered documents.
func NewRenderCache(c Cache, ttl time.Duration) *RenderCache {
	return &RenderCache{cache: c, ttl: ttl}
}

// renderKey builds the cache key for one rendered page.
func renderKey(projectID, pageID string, updatedAt time.Time) string {
	return fmt.Sprintf("render:%s:%s:%d", projectID, pageID, updatedAt.UTC().UnixNano())
}

// Get returns the cached document for a page, or ErrCacheMiss.
func (r *RenderCache) Get(ctx context.Context, projectID, pageID string, updatedAt time.Time) (string, error) {
	data, err := r.cache.Get(ctx, renderKey(projectID, pageID, updatedAt))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Set stores a rendered document.
func (r *RenderCache) Set(ctx context.Context, projectID, pageID string, updatedAt time.Time, html string) error {
	return r.cache.Set(ctx, renderKey(projectID, pageID, updatedAt), []byte(html), r.ttl)
}

// InvalidateProject drops every rendered page of a project.
func (r *RenderCache) InvalidateProject(ctx context.Context, projectID string) error {
	return r.cache.DeleteByPrefix(ctx, "render:"+projectID+":")
}
