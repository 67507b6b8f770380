// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"time"
)

// Version is one stored snapshot of a project. Snapshots are immutable; the
// payload is the full project JSON at capture time.
type Version struct {
	ID        int64           `json:"id"`
	ProjectID string          `json:"projectId"`
	Label     string          `json:"label,omitempty"`
	Data      json.RawMessage `json:"-"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Project decodes the snapshot payload.
func (v *Version) Project() (*Project, error) {
	var p Project
	if err := json.Unmarshal(v.Data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
