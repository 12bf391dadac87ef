package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"rewind/internal/domain"
)

type FeedBuilder interface {
	Build(ctx context.Context, req domain.RewindRequest) (*domain.Feed, error)
}

type ScriptGenerator interface {
	Generate(ctx context.Context, feed *domain.Feed) (*domain.Script, error)
}

type ComponentResolver interface {
	Resolve(ctx context.Context, c domain.UIComponent) (domain.ResolvedComponent, error)
}

type Narrator interface {
	Render(ctx context.Context, text string, languageCode string) (domain.Narration, error)
}

type Aligner interface {
	Align(ctx context.Context, sourceURL string, narration string, narrationDuration float64) (domain.ClipRange, error)
}

type TimelineCache interface {
	Get(ctx context.Context, fingerprint string) (*domain.Timeline, bool, error)
	Put(ctx context.Context, fingerprint string, timeline *domain.Timeline) error
}

type Rewinder interface {
	Rewind(ctx context.Context, req domain.RewindRequest, observe domain.Observer) (*domain.Timeline, error)
}

type JobStore interface {
	Create(ctx context.Context, job *domain.Job) error
	Get(ctx context.Context, id string) (*domain.Job, error)
	MarkRunning(ctx context.Context, id string) (*domain.Job, bool, error)
	UpdateProgress(ctx context.Context, id string, stage domain.Stage, section int) error
	Complete(ctx context.Context, id string, timeline *domain.Timeline) error
	Fail(ctx context.Context, id string, message string) error
	ListStale(ctx context.Context, before time.Time, limit int) ([]string, error)
	Requeue(ctx context.Context, id string) error
}

type JobPublisher interface {
	Publish(ctx context.Context, jobID string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
