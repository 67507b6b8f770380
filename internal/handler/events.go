// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/olegiv/osite-go/internal/cache"
	"github.com/olegiv/osite-go/internal/model"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// EventResponse is one event log entry in API responses.
type EventResponse struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListEvents handles GET /api/v1/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteBadRequest(w, "Invalid limit", nil)
			return
		}
		limit = min(n, maxEventLimit)
	}

	events, err := h.store.ListEvents(r.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "listing events failed", "error", err.Error())
		WriteInternalError(w, "Failed to list events")
		return
	}

	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, EventResponse(e))
	}
	WriteSuccess(w, resp)
}

// CacheStats handles GET /api/v1/cache/stats.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	provider, ok := h.cache.(cache.StatsProvider)
	if !ok {
		WriteNotFound(w, "Cache statistics not available")
		return
	}
	WriteSuccess(w, provider.Stats())
}

// ClearCache handles POST /api/v1/cache/clear.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.cache.Clear(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "clearing cache failed",
			"category", model.EventCategoryCache, "error", err.Error())
		WriteInternalError(w, "Failed to clear cache")
		return
	}
	h.logger.InfoContext(r.Context(), "cache cleared",
		"category", model.EventCategoryCache)
	WriteSuccess(w, map[string]string{"status": "cleared"})
}
