// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides the business logic layer between HTTP handlers
// and the store: project lifecycle, version snapshots, and render caching.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/olegiv/osite-go/internal/model"
	"github.com/olegiv/osite-go/internal/store"
)

// VersionService manages project snapshots: capture, throttled auto-capture,
// history listing, and pruning to the configured cap.
type VersionService struct {
	store       *store.Store
	maxVersions int
	throttle    time.Duration

	now func() time.Time
}

// NewVersionService creates a VersionService. maxVersions caps the history
// per project; throttle is the minimum interval between auto snapshots.
func NewVersionService(st *store.Store, maxVersions int, throttle time.Duration) *VersionService {
	return &VersionService{
		store:       st,
		maxVersions: maxVersions,
		throttle:    throttle,
		now:         time.Now,
	}
}

// Snapshot captures the current state of a project unconditionally and prunes
// the history to the cap. Label is optional.
func (s *VersionService) Snapshot(ctx context.Context, p *model.Project, label string) (*model.Version, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot of project %s: %w", p.ID, err)
	}

	v := &model.Version{
		ProjectID: p.ID,
		Label:     label,
		Data:      data,
		CreatedAt: s.now().UTC(),
	}
	id, err := s.store.CreateVersion(ctx, v)
	if err != nil {
		return nil, err
	}
	v.ID = id

	if _, err := s.store.PruneVersions(ctx, p.ID, s.maxVersions); err != nil {
		return nil, err
	}
	return v, nil
}

// AutoSnapshot captures the project only when the newest snapshot is older
// than the throttle interval. It reports whether a snapshot was taken.
func (s *VersionService) AutoSnapshot(ctx context.Context, p *model.Project) (bool, error) {
	if s.throttle > 0 {
		latest, err := s.store.LatestVersionTime(ctx, p.ID)
		if err != nil {
			return false, err
		}
		if !latest.IsZero() && s.now().Sub(latest) < s.throttle {
			return false, nil
		}
	}

	if _, err := s.Snapshot(ctx, p, ""); err != nil {
		return false, err
	}
	return true, nil
}

// List returns the snapshot history of a project, newest first, without
// payloads.
func (s *VersionService) List(ctx context.Context, projectID string) ([]model.Version, error) {
	return s.store.ListVersions(ctx, projectID)
}

// Get loads one snapshot with its payload and verifies it belongs to the
// given project.
func (s *VersionService) Get(ctx context.Context, projectID string, versionID int64) (*model.Version, error) {
	v, err := s.store.GetVersion(ctx, versionID)
	if err != nil {
		return nil, err
	}
	if v.ProjectID != projectID {
		return nil, store.ErrNotFound
	}
	return v, nil
}

// Prune trims the history of a project to the cap and returns how many
// snapshots were removed. The scheduler calls this for every project.
func (s *VersionService) Prune(ctx context.Context, projectID string) (int64, error) {
	return s.store.PruneVersions(ctx, projectID, s.maxVersions)
}

// ProjectIDs returns the ids of all projects with snapshot history.
func (s *VersionService) ProjectIDs(ctx context.Context) ([]string, error) {
	return s.store.ProjectIDsWithVersions(ctx)
}
