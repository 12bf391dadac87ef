package component

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"rewind/internal/domain"
)

type SportsData interface {
	Game(ctx context.Context, gameID string) (*domain.Game, error)
	Highlights(ctx context.Context, gameID string) ([]domain.Highlight, error)
	TeamLeaders(ctx context.Context, teamID int, season string, gameType string) ([]domain.LeaderCategory, error)
	Team(ctx context.Context, teamID int) (*domain.Team, error)
	Player(ctx context.Context, playerID int) (*domain.Player, error)
}
