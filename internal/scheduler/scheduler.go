package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Reaper puts jobs abandoned by a dead worker back on the queue.
type Reaper interface {
	RequeueStale(ctx context.Context) (int, error)
}

type Scheduler struct {
	reaper   Reaper
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(reaper Reaper, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		reaper:   reaper,
		interval: interval,
		timeout:  time.Minute,
		logger:   logger.With("component", "reaper"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runReap(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runReap(ctx)
		}
	}
}

func (s *Scheduler) runReap(ctx context.Context) {
	reapCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.reaper.RequeueStale(reapCtx)
	if err != nil {
		s.logger.Error("requeue stale jobs failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("stale jobs requeued", "count", n)
	}
}
