// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/osite-go/internal/model"
	"github.com/olegiv/osite-go/internal/service"
)

// Scheduler handles periodic maintenance like version history pruning.
type Scheduler struct {
	versions *service.VersionService
	cron     *cron.Cron
	logger   *slog.Logger
}

// New creates a new scheduler instance.
func New(versions *service.VersionService, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		versions: versions,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start begins the scheduler with an hourly version pruning job. Pruning
// also runs on every snapshot; this job catches projects whose cap was
// lowered between restarts.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@hourly", func() {
		if err := s.pruneVersions(); err != nil {
			s.logger.Error("version pruning failed",
				"category", model.EventCategoryVersion, "error", err.Error())
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// pruneVersions trims the snapshot history of every project to the cap.
func (s *Scheduler) pruneVersions() error {
	ctx := context.Background()

	ids, err := s.versions.ProjectIDs(ctx)
	if err != nil {
		return err
	}

	var total int64
	for _, id := range ids {
		n, err := s.versions.Prune(ctx, id)
		if err != nil {
			s.logger.Error("pruning project versions failed",
				"category", model.EventCategoryVersion,
				"project_id", id, "error", err.Error())
			continue
		}
		total += n
	}

	if total > 0 {
		s.logger.Info("version history pruned",
			"category", model.EventCategoryVersion,
			"projects", len(ids), "removed", total)
	}
	return nil
}
