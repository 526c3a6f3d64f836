package scheduler

import (
	"context"
	"log/slog"
	"time"

	"ttrss_sync/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

type Scheduler struct {
	syncer      Syncer
	interval    time.Duration
	passTimeout time.Duration
	logger      *slog.Logger
}

func NewScheduler(syncer Syncer, interval, passTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:      syncer,
		interval:    interval,
		passTimeout: passTimeout,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "pass_timeout", s.passTimeout)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.passTimeout)
	defer cancel()

	stats, err := s.syncer.Sync(syncCtx)
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		return
	}
	s.logger.Info("sync pass finished",
		"categories", stats.Categories,
		"feeds", stats.Feeds,
		"articles", stats.Articles,
		"reconciled", stats.Reconciled,
		"purged", stats.Purged,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
}
