package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"rewind/internal/domain"
)

type JobService interface {
	Submit(ctx context.Context, req domain.RewindRequest) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}
