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

// CreateProjectRequest is the request body for creating a project.
type CreateProjectRequest struct {
	Name     string `json:"name"`
	Template string `json:"template,omitempty"`
}

// ListProjects handles GET /api/v1/projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	infos, err := h.projects.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "listing projects failed", "error", err.Error())
		WriteInternalError(w, "Failed to list projects")
		return
	}
	if infos == nil {
		infos = []store.ProjectInfo{}
	}
	WriteSuccess(w, infos)
}

// CreateProject handles POST /api/v1/projects.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	p, err := h.projects.Create(r.Context(), strings.TrimSpace(req.Name), req.Template)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			WriteValidationError(w, map[string]string{"template": "Unknown template"})
			return
		}
		h.logger.ErrorContext(r.Context(), "creating project failed", "error", err.Error())
		WriteInternalError(w, "Failed to create project")
		return
	}
	WriteCreated(w, p)
}

// GetProject handles GET /api/v1/projects/{projectID}.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, ok := h.requireProject(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, p)
}

// UpdateProject handles PUT /api/v1/projects/{projectID}. The body is the
// full project record; id and creation time are taken from the stored row.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	current, ok := h.requireProject(w, r)
	if !ok {
		return
	}

	var incoming model.Project
	if !decodeBody(w, r, &incoming) {
		return
	}
	if strings.TrimSpace(incoming.Name) == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}
	if len(incoming.Pages) == 0 {
		WriteValidationError(w, map[string]string{"pages": "Project must keep at least one page"})
		return
	}

	incoming.ID = current.ID
	incoming.CreatedAt = current.CreatedAt

	if err := h.projects.Save(r.Context(), &incoming); err != nil {
		h.logger.ErrorContext(r.Context(), "saving project failed",
			"project_id", current.ID, "error", err.Error())
		WriteInternalError(w, "Failed to save project")
		return
	}
	WriteSuccess(w, &incoming)
}

// DeleteProject handles DELETE /api/v1/projects/{projectID}.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "projectID")
	err := h.projects.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		WriteNotFound(w, "Project not found")
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "deleting project failed",
			"project_id", id, "error", err.Error())
		WriteInternalError(w, "Failed to delete project")
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: map[string]string{"status": "deleted"}})
}

// requireProject loads the project named in the URL, writing the error
// response itself when that fails.
func (h *Handler) requireProject(w http.ResponseWriter, r *http.Request) (*model.Project, bool) {
	id := chi.URLParam(r, "projectID")
	if id == "" {
		WriteBadRequest(w, "Invalid project ID", nil)
		return nil, false
	}

	p, err := h.projects.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		WriteNotFound(w, "Project not found")
		return nil, false
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "loading project failed",
			"project_id", id, "error", err.Error())
		WriteInternalError(w, "Failed to load project")
		return nil, false
	}
	return p, true
}
