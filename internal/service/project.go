// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/osite-go/internal/cache"
	"github.com/olegiv/osite-go/internal/model"
	"github.com/olegiv/osite-go/internal/sitetemplate"
	"github.com/olegiv/osite-go/internal/store"
	"github.com/olegiv/osite-go/internal/theme"
	"github.com/olegiv/osite-go/internal/util"
)

// ErrTemplateNotFound is returned when a project is created from an unknown
// template id.
var ErrTemplateNotFound = errors.New("template not found")

// ErrSlugTaken is returned when adding a page whose slug already exists in
// the project.
var ErrSlugTaken = errors.New("page slug already in use")

// ProjectService implements the project lifecycle: creation from templates,
// persistence, page management, and version restore.
type ProjectService struct {
	store    *store.Store
	versions *VersionService
	render   *cache.RenderCache
	logger   *slog.Logger

	now func() time.Time
}

// NewProjectService creates a ProjectService. render may be nil when preview
// caching is disabled.
func NewProjectService(st *store.Store, versions *VersionService, render *cache.RenderCache, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		store:    st,
		versions: versions,
		render:   render,
		logger:   logger,
		now:      time.Now,
	}
}

// Create builds a new project from a starter template and persists it.
// An empty templateID creates a blank project with a single home page.
func (s *ProjectService) Create(ctx context.Context, name, templateID string) (*model.Project, error) {
	if name == "" {
		name = "Neue Website"
	}

	newID := func() string { return uuid.NewString() }
	now := s.now().UTC()

	p := &model.Project{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if templateID == "" {
		p.Theme = theme.Default
		p.Pages = []model.Page{{
			ID:      newID(),
			Name:    "Startseite",
			Slug:    model.HomeSlug,
			Content: []model.Block{},
		}}
	} else {
		tpl, ok := sitetemplate.ByID(templateID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
		}
		p.Theme = tpl.Theme
		p.Pages = tpl.Instantiate(newID)
	}
	p.ActivePageID = p.Pages[0].ID

	if err := s.store.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "project created",
		"category", model.EventCategoryProject,
		"project_id", p.ID, "name", p.Name, "template", templateID)
	return p, nil
}

// Get loads one project.
func (s *ProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	return s.store.GetProject(ctx, id)
}

// List returns the project listing rows, newest update first.
func (s *ProjectService) List(ctx context.Context) ([]store.ProjectInfo, error) {
	return s.store.ListProjects(ctx)
}

// Delete removes a project and drops its cached previews. Snapshot history
// cascades in the store.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.invalidateRender(ctx, id)

	s.logger.InfoContext(ctx, "project deleted",
		"category", model.EventCategoryProject, "project_id", id)
	return nil
}

// Save persists a modified project. It repairs the active-page pointer,
// bumps the update timestamp, invalidates cached previews, and takes a
// throttled auto snapshot. Snapshot failures are logged but do not fail
// the save.
func (s *ProjectService) Save(ctx context.Context, p *model.Project) error {
	p.Normalize()
	p.UpdatedAt = s.now().UTC()

	if err := s.store.UpdateProject(ctx, p); err != nil {
		return err
	}
	s.invalidateRender(ctx, p.ID)

	if s.versions != nil {
		if _, err := s.versions.AutoSnapshot(ctx, p); err != nil {
			s.logger.WarnContext(ctx, "auto snapshot failed",
				"category", model.EventCategoryVersion,
				"project_id", p.ID, "error", err.Error())
		}
	}
	return nil
}

// AddPage appends a new empty page to a project. The slug derives from the
// page name; a slug collision is an error.
func (s *ProjectService) AddPage(ctx context.Context, projectID, name string) (*model.Page, error) {
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	slug := util.PageSlug(name)
	if p.PageBySlug(slug) != nil {
		return nil, fmt.Errorf("%w: %s", ErrSlugTaken, slug)
	}

	page := model.Page{
		ID:      uuid.NewString(),
		Name:    name,
		Slug:    slug,
		Content: []model.Block{},
	}
	p.Pages = append(p.Pages, page)
	p.ActivePageID = page.ID

	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "page added",
		"category", model.EventCategoryProject,
		"project_id", projectID, "page_id", page.ID, "slug", slug)
	return &page, nil
}

// RenamePage updates the name of a page and, when reslug is set, derives a
// new slug from it. The home slug never changes; any other new slug must be
// unique within the project.
func (s *ProjectService) RenamePage(ctx context.Context, projectID, pageID, name string, reslug bool) (*model.Page, error) {
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	page := p.PageByID(pageID)
	if page == nil {
		return nil, model.ErrPageNotFound
	}

	page.Name = name
	if reslug && !page.IsHome() {
		slug := util.PageSlug(name)
		if other := p.PageBySlug(slug); other != nil && other.ID != pageID {
			return nil, fmt.Errorf("%w: %s", ErrSlugTaken, slug)
		}
		page.Slug = slug
	}

	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "page renamed",
		"category", model.EventCategoryProject,
		"project_id", projectID, "page_id", pageID, "slug", page.Slug)
	renamed := *page
	return &renamed, nil
}

// DeletePage removes a page from a project. The last remaining page cannot
// be deleted.
func (s *ProjectService) DeletePage(ctx context.Context, projectID, pageID string) error {
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if err := p.RemovePage(pageID); err != nil {
		return err
	}
	if err := s.Save(ctx, p); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "page deleted",
		"category", model.EventCategoryProject,
		"project_id", projectID, "page_id", pageID)
	return nil
}

// RestoreVersion replaces the project state with a stored snapshot. The
// current state is captured first, so a restore is itself undoable.
func (s *ProjectService) RestoreVersion(ctx context.Context, projectID string, versionID int64) (*model.Project, error) {
	current, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	v, err := s.versions.Get(ctx, projectID, versionID)
	if err != nil {
		return nil, err
	}
	restored, err := v.Project()
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot %d: %w", versionID, err)
	}

	if _, err := s.versions.Snapshot(ctx, current, "Vor Wiederherstellung"); err != nil {
		return nil, err
	}

	// Identity and creation time survive the restore.
	restored.ID = current.ID
	restored.CreatedAt = current.CreatedAt
	restored.Normalize()
	restored.UpdatedAt = s.now().UTC()

	if err := s.store.UpdateProject(ctx, restored); err != nil {
		return nil, err
	}
	s.invalidateRender(ctx, projectID)

	s.logger.InfoContext(ctx, "version restored",
		"category", model.EventCategoryVersion,
		"project_id", projectID, "version_id", versionID)
	return restored, nil
}

// invalidateRender drops cached previews, logging failures without
// propagating them.
func (s *ProjectService) invalidateRender(ctx context.Context, projectID string) {
	if s.render == nil {
		return
	}
	if err := s.render.InvalidateProject(ctx, projectID); err != nil {
		s.logger.WarnContext(ctx, "render cache invalidation failed",
			"category", model.EventCategoryCache,
			"project_id", projectID, "error", err.Error())
	}
}
