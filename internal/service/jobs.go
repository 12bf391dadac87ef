package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rewind/internal/config"
	"rewind/internal/domain"
)

// JobService runs rewinds off the request path. Submit stores and queues a
// job, and the worker calls Process for each delivered message.
type JobService struct {
	jobs      JobStore
	publisher JobPublisher
	txManager TransactionManager
	rewinder  Rewinder
	now       func() time.Time
	logger    *slog.Logger
	config    config.JobsConfig
}

func NewJobService(
	jobs JobStore,
	publisher JobPublisher,
	txManager TransactionManager,
	rewinder Rewinder,
	logger *slog.Logger,
	cfg config.JobsConfig,
) *JobService {
	return &JobService{
		jobs:      jobs,
		publisher: publisher,
		txManager: txManager,
		rewinder:  rewinder,
		now:       time.Now,
		logger:    logger.With("component", "jobs"),
		config:    cfg,
	}
}

func (s *JobService) Submit(ctx context.Context, req domain.RewindRequest) (*domain.Job, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, ok := domain.LookupLanguage(req.LanguageCode); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, req.LanguageCode)
	}

	now := s.now().UTC()
	job := &domain.Job{
		ID:          uuid.NewString(),
		Request:     req,
		Fingerprint: req.Fingerprint(),
		Status:      domain.JobQueued,
		Stage:       domain.StageQueued,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The row must be committed before the message can reach a worker.
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	if err := s.publisher.Publish(ctx, job.ID); err != nil {
		// The job stays queued and RequeueStale publishes it again.
		s.logger.Error("publish job, leaving it to the reaper",
			"job_id", job.ID,
			"error", err,
		)
		return job, nil
	}

	s.logger.Info("job submitted",
		"job_id", job.ID,
		"event_id", req.EventID,
		"language", req.LanguageCode,
	)
	return job, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.Get(ctx, id)
}

// Process runs the job with the given id. Pipeline failures end the job as
// failed and are not returned; only store errors and shutdown are, so the
// message goes back on the queue.
func (s *JobService) Process(ctx context.Context, jobID string) error {
	logger := s.logger.With("job_id", jobID)

	job, claimed, err := s.jobs.MarkRunning(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Warn("dropping message for unknown job")
		return nil
	}
	if err != nil {
		return fmt.Errorf("claim job: %w", err)
	}
	if !claimed {
		logger.Info("job already finished", "status", job.Status)
		return nil
	}

	logger.Info("processing job", "event_id", job.Request.EventID, "attempt", job.Attempts)
	start := s.now()

	observe := func(stage domain.Stage, section int) {
		if err := s.jobs.UpdateProgress(ctx, jobID, stage, section); err != nil {
			logger.Warn("update job progress", "stage", stage, "error", err)
		}
	}

	timeline, err := s.rewinder.Rewind(ctx, job.Request, observe)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("rewind interrupted: %w", err)
		}
		logger.Error("rewind failed", "error", err)
		if err := s.jobs.Fail(ctx, jobID, domain.UserMessage(err)); err != nil {
			return err
		}
		return nil
	}

	if err := s.jobs.Complete(ctx, jobID, timeline); err != nil {
		return err
	}

	logger.Info("job completed",
		"sections", len(timeline.Sections),
		"total_duration", timeline.TotalDuration,
		"duration", s.now().Sub(start),
	)
	return nil
}

// RequeueStale puts back on the queue jobs whose worker stopped reporting
// progress and queued jobs whose message never went out. Rows stay locked
// until the messages are published, so a worker claiming one waits for the
// commit.
func (s *JobService) RequeueStale(ctx context.Context) (int, error) {
	before := s.now().Add(-s.config.StaleAfter)

	var requeued int
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		ids, err := s.jobs.ListStale(ctx, before, s.config.ReapBatch)
		if err != nil {
			return err
		}

		for _, id := range ids {
			if err := s.jobs.Requeue(ctx, id); err != nil {
				return err
			}
			if err := s.publisher.Publish(ctx, id); err != nil {
				return fmt.Errorf("publish job %s: %w", id, err)
			}
			requeued++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("requeue stale jobs: %w", err)
	}

	if requeued > 0 {
		s.logger.Info("requeued stale jobs", "count", requeued)
	}
	return requeued, nil
}
