package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"rewind/internal/domain"
)

const (
	BlockGameID      = "Game ID"
	BlockPreferences = "User Preferences"
	BlockGameInfo    = "Game Information"
	BlockBoxScore    = "Box Score"
	BlockLeaders     = "Team Leaders"
	BlockLanguage    = "Language"
	BlockRoster      = "Rosters"
	BlockLineScore   = "Line Score"
	BlockPlayByPlay  = "Inning by Inning"
	BlockHighlights  = "Highlights"
)

// Builder aggregates every fact about an event into one feed.
type Builder struct {
	data   GameData
	logger *slog.Logger
}

func NewBuilder(data GameData, logger *slog.Logger) *Builder {
	return &Builder{
		data:   data,
		logger: logger.With("component", "feed"),
	}
}

// Build fetches the game snapshot and renders it. Any failed upstream read
// fails the whole feed.
func (b *Builder) Build(ctx context.Context, req domain.RewindRequest) (*domain.Feed, error) {
	req = req.Normalize()

	lang, ok := domain.LookupLanguage(req.LanguageCode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, req.LanguageCode)
	}

	var (
		game       *domain.Game
		highlights []domain.Highlight
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		game, err = b.data.Game(gctx, req.EventID)
		return upstream(ctx, "fetch game", err)
	})
	g.Go(func() error {
		var err error
		highlights, err = b.data.Highlights(gctx, req.EventID)
		return upstream(ctx, "fetch highlights", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var homeLeaders, awayLeaders []domain.LeaderCategory

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		homeLeaders, err = b.data.TeamLeaders(gctx, game.Home.Team.ID, game.Season, game.GameType)
		return upstream(ctx, "fetch home team leaders", err)
	})
	g.Go(func() error {
		var err error
		awayLeaders, err = b.data.TeamLeaders(gctx, game.Away.Team.ID, game.Season, game.GameType)
		return upstream(ctx, "fetch away team leaders", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	feed := &domain.Feed{
		EventID:  req.EventID,
		Language: lang,
		Blocks: []domain.FeedBlock{
			{Name: BlockGameID, Body: req.EventID},
			{Name: BlockPreferences, Body: formatPreferences(req)},
			{Name: BlockGameInfo, Body: formatGameInfo(game)},
			{Name: BlockBoxScore, Body: formatBoxScore(game)},
			{Name: BlockLeaders, Body: formatLeaders(game, homeLeaders, awayLeaders)},
			{Name: BlockLanguage, Body: formatLanguage(lang)},
			{Name: BlockRoster, Body: formatRosters(game)},
			{Name: BlockLineScore, Body: formatLineScore(game)},
			{Name: BlockPlayByPlay, Body: formatPlays(game.Plays)},
			{Name: BlockHighlights, Body: formatHighlights(highlights)},
		},
	}

	b.logger.Debug("feed built",
		"event_id", req.EventID,
		"plays", len(game.Plays),
		"highlights", len(highlights),
	)

	return feed, nil
}

// upstream classifies a failed read. Context errors pass through so the
// caller can tell a deadline from bad data.
func upstream(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, domain.ErrUpstreamData) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrUpstreamData, op, err)
}
