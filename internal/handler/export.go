// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/osite-go/internal/export"
	"github.com/olegiv/osite-go/internal/model"
	"github.com/olegiv/osite-go/internal/util"
)

// ExportProject handles GET /api/v1/projects/{projectID}/export. The response
// is the zip archive of the rendered site.
func (h *Handler) ExportProject(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requireProject(w, r)
	if !ok {
		return
	}

	archive, err := export.ExportProject(p)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "export failed",
			"category", model.EventCategoryExport,
			"project_id", p.ID, "error", err.Error())
		WriteInternalError(w, "Export failed")
		return
	}

	h.logger.InfoContext(r.Context(), "project exported",
		"category", model.EventCategoryExport,
		"project_id", p.ID, "files", len(archive.Files), "bytes", len(archive.Zip))

	filename := util.Slugify(p.Name)
	if filename == "" {
		filename = "website"
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".zip"))
	w.Header().Set("Content-Length", strconv.Itoa(len(archive.Zip)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive.Zip)
}

// PreviewPage handles GET /api/v1/projects/{projectID}/preview/{pageID}. The
// response is the standalone HTML document of one page, served from the
// render cache when possible.
func (h *Handler) PreviewPage(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requireProject(w, r)
	if !ok {
		return
	}

	pageID := chi.URLParam(r, "pageID")
	pageIndex := -1
	for i := range p.Pages {
		if p.Pages[i].ID == pageID {
			pageIndex = i
			break
		}
	}
	if pageIndex < 0 {
		WriteNotFound(w, "Page not found")
		return
	}

	var html string
	cached := false
	if h.render != nil {
		if doc, err := h.render.Get(r.Context(), p.ID, pageID, p.UpdatedAt); err == nil {
			html = doc
			cached = true
		}
	}
	if !cached {
		html = export.AssembleDocument(p, pageIndex)
		if h.render != nil {
			if err := h.render.Set(r.Context(), p.ID, pageID, p.UpdatedAt, html); err != nil {
				h.logger.WarnContext(r.Context(), "caching preview failed",
					"category", model.EventCategoryCache,
					"project_id", p.ID, "page_id", pageID, "error", err.Error())
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Cache", cacheHeader(cached))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
