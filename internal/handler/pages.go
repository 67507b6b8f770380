// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/osite-go/internal/model"
	"github.com/olegiv/osite-go/internal/service"
	"github.com/olegiv/osite-go/internal/store"
)

// CreatePageRequest is the request body for adding a page to a project.
type CreatePageRequest struct {
	Name string `json:"name"`
}

// CreatePage handles POST /api/v1/projects/{projectID}/pages.
func (h *Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	var req CreatePageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	page, err := h.projects.AddPage(r.Context(), projectID, strings.TrimSpace(req.Name))
	switch {
	case errors.Is(err, store.ErrNotFound):
		WriteNotFound(w, "Project not found")
	case errors.Is(err, service.ErrSlugTaken):
		WriteConflict(w, "A page with this slug already exists")
	case err != nil:
		h.logger.ErrorContext(r.Context(), "adding page failed",
			"project_id", projectID, "error", err.Error())
		WriteInternalError(w, "Failed to add page")
	default:
		WriteCreated(w, page)
	}
}

// UpdatePageRequest is the request body for renaming a page.
type UpdatePageRequest struct {
	Name string `json:"name"`
	// Reslug derives a fresh slug from the new name. The home page keeps
	// its slug regardless.
	Reslug bool `json:"reslug,omitempty"`
}

// UpdatePage handles PUT /api/v1/projects/{projectID}/pages/{pageID}.
func (h *Handler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	pageID := chi.URLParam(r, "pageID")

	var req UpdatePageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	page, err := h.projects.RenamePage(r.Context(), projectID, pageID, strings.TrimSpace(req.Name), req.Reslug)
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, model.ErrPageNotFound):
		WriteNotFound(w, "Page not found")
	case errors.Is(err, service.ErrSlugTaken):
		WriteConflict(w, "A page with this slug already exists")
	case err != nil:
		h.logger.ErrorContext(r.Context(), "renaming page failed",
			"project_id", projectID, "page_id", pageID, "error", err.Error())
		WriteInternalError(w, "Failed to rename page")
	default:
		WriteSuccess(w, page)
	}
}

// DeletePage handles DELETE /api/v1/projects/{projectID}/pages/{pageID}.
func (h *Handler) DeletePage(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	pageID := chi.URLParam(r, "pageID")

	err := h.projects.DeletePage(r.Context(), projectID, pageID)
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, model.ErrPageNotFound):
		WriteNotFound(w, "Page not found")
	case errors.Is(err, model.ErrLastPage):
		WriteConflict(w, "The last page of a project cannot be deleted")
	case err != nil:
		h.logger.ErrorContext(r.Context(), "deleting page failed",
			"project_id", projectID, "page_id", pageID, "error", err.Error())
		WriteInternalError(w, "Failed to delete page")
	default:
		WriteJSON(w, http.StatusOK, Response{Data: map[string]string{"status": "deleted"}})
	}
}
