// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/osite-go/internal/middleware"
)

// RouterConfig tunes per-route middleware.
type RouterConfig struct {
	// ExportRPS and ExportBurst configure the per-IP export rate limit.
	// An RPS of zero disables the limiter.
	ExportRPS   float64
	ExportBurst int
}

// NewRouter builds the chi router with all API and health routes.
func NewRouter(h *Handler, health *HealthHandler, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/health", health.Health)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", h.Status)
		r.Get("/templates", h.ListTemplates)
		r.Get("/events", h.ListEvents)

		r.Get("/cache/stats", h.CacheStats)
		r.Post("/cache/clear", h.ClearCache)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)
			r.Post("/", h.CreateProject)

			r.Route("/{projectID}", func(r chi.Router) {
				r.Get("/", h.GetProject)
				r.Put("/", h.UpdateProject)
				r.Delete("/", h.DeleteProject)

				r.Post("/pages", h.CreatePage)
				r.Put("/pages/{pageID}", h.UpdatePage)
				r.Delete("/pages/{pageID}", h.DeletePage)

				r.Get("/preview/{pageID}", h.PreviewPage)

				r.Group(func(r chi.Router) {
					if cfg.ExportRPS > 0 {
						r.Use(middleware.ExportRateLimit(cfg.ExportRPS, cfg.ExportBurst))
					}
					r.Get("/export", h.ExportProject)
				})

				r.Get("/versions", h.ListVersions)
				r.Post("/versions", h.CreateVersion)
				r.Post("/versions/{versionID}/restore", h.RestoreVersion)
			})
		})
	})

	return r
}
