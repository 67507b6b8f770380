// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/olegiv/osite-go/internal/model"
)

// CreateVersion stores a snapshot and returns its id.
func (s *Store) CreateVersion(ctx context.Context, v *model.Version) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO project_versions (project_id, label, data, created_at) VALUES (?, ?, ?, ?)`,
		v.ProjectID, v.Label, string(v.Data), v.CreatedAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting version for project %s: %w", v.ProjectID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading version id: %w", err)
	}
	return id, nil
}

// GetVersion loads one snapshot with its payload.
func (s *Store) GetVersion(ctx context.Context, id int64) (*model.Version, error) {
	var v model.Version
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, project_id, label, data, created_at FROM project_versions WHERE id = ?`, id,
	).Scan(&v.ID, &v.ProjectID, &v.Label, &data, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading version %d: %w", id, err)
	}
	v.Data = json.RawMessage(data)
	return &v, nil
}

// ListVersions returns the snapshot history of a project without payloads,
// newest first.
func (s *Store) ListVersions(ctx context.Context, projectID string) ([]model.Version, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, label, created_at FROM project_versions
		 WHERE project_id = ? ORDER BY created_at DESC, id DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing versions of project %s: %w", projectID, err)
	}
	defer rows.Close()

	var versions []model.Version
	for rows.Next() {
		var v model.Version
		if err := rows.Scan(&v.ID, &v.ProjectID, &v.Label, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning version row: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// LatestVersionTime returns the creation time of the newest snapshot, or the
// zero time when the project has none.
func (s *Store) LatestVersionTime(ctx context.Context, projectID string) (time.Time, error) {
	var created time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT created_at FROM project_versions WHERE project_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT 1`, projectID,
	).Scan(&created)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("loading latest version time of project %s: %w", projectID, err)
	}
	return created, nil
}

// PruneVersions deletes the oldest snapshots of a project beyond keep and
// returns how many were removed.
func (s *Store) PruneVersions(ctx context.Context, projectID string, keep int) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM project_versions WHERE project_id = ? AND id NOT IN (
		     SELECT id FROM project_versions WHERE project_id = ?
		     ORDER BY created_at DESC, id DESC LIMIT ?
		 )`, projectID, projectID, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning versions of project %s: %w", projectID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned versions: %w", err)
	}
	return n, nil
}

// ProjectIDsWithVersions returns the ids of all projects that currently have
// snapshots, for the pruning job.
func (s *Store) ProjectIDsWithVersions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT project_id FROM project_versions`)
	if err != nil {
		return nil, fmt.Errorf("listing versioned projects: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning project id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
