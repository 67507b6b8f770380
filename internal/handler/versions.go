// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/osite-go/internal/model"
	"github.com/olegiv/osite-go/internal/store"
)

// CreateVersionRequest is the request body for a manual snapshot.
type CreateVersionRequest struct {
	Label string `json:"label,omitempty"`
}

// ListVersions handles GET /api/v1/projects/{projectID}/versions.
func (h *Handler) ListVersions(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requireProject(w, r)
	if !ok {
		return
	}

	history, err := h.versions.List(r.Context(), p.ID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "listing versions failed",
			"category", model.EventCategoryVersion,
			"project_id", p.ID, "error", err.Error())
		WriteInternalError(w, "Failed to list versions")
		return
	}
	if history == nil {
		history = []model.Version{}
	}
	WriteSuccess(w, history)
}

// CreateVersion handles POST /api/v1/projects/{projectID}/versions. It takes
// a manual snapshot of the current project state.
func (h *Handler) CreateVersion(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requireProject(w, r)
	if !ok {
		return
	}

	var req CreateVersionRequest
	if r.ContentLength > 0 && !decodeBody(w, r, &req) {
		return
	}

	v, err := h.versions.Snapshot(r.Context(), p, req.Label)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "snapshot failed",
			"category", model.EventCategoryVersion,
			"project_id", p.ID, "error", err.Error())
		WriteInternalError(w, "Failed to create snapshot")
		return
	}
	WriteCreated(w, v)
}

// RestoreVersion handles POST /api/v1/projects/{projectID}/versions/{versionID}/restore.
func (h *Handler) RestoreVersion(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	versionID, err := strconv.ParseInt(chi.URLParam(r, "versionID"), 10, 64)
	if err != nil {
		WriteBadRequest(w, "Invalid version ID", nil)
		return
	}

	restored, err := h.projects.RestoreVersion(r.Context(), projectID, versionID)
	if errors.Is(err, store.ErrNotFound) {
		WriteNotFound(w, "Version not found")
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "restore failed",
			"category", model.EventCategoryVersion,
			"project_id", projectID, "version_id", versionID, "error", err.Error())
		WriteInternalError(w, "Failed to restore version")
		return
	}
	WriteSuccess(w, restored)
}
