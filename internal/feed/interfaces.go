package feed

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"rewind/internal/domain"
)

type GameData interface {
	Game(ctx context.Context, gameID string) (*domain.Game, error)
	Highlights(ctx context.Context, gameID string) ([]domain.Highlight, error)
	TeamLeaders(ctx context.Context, teamID int, season string, gameType string) ([]domain.LeaderCategory, error)
}
