package component

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"rewind/internal/domain"
)

// Resolver fetches the data a client needs to draw a UI component.
type Resolver struct {
	data   SportsData
	logger *slog.Logger
}

func NewResolver(data SportsData, logger *slog.Logger) *Resolver {
	return &Resolver{
		data:   data,
		logger: logger.With("component", "resolver"),
	}
}

func (r *Resolver) Resolve(ctx context.Context, c domain.UIComponent) (domain.ResolvedComponent, error) {
	var (
		data any
		err  error
	)

	switch c := c.(type) {
	case domain.GameInfoCard:
		data, err = r.gameInfo(ctx, c)
	case domain.LineBox:
		data, err = r.lineBox(ctx, c)
	case domain.PlayerCard:
		data, err = r.playerCard(ctx, c)
	case domain.HighlightVideo:
		data, err = r.highlightVideo(ctx, c)
	case domain.TeamLeaders:
		data, err = r.teamLeaders(ctx, c)
	default:
		return domain.ResolvedComponent{}, fmt.Errorf("%w: unsupported component %T", domain.ErrInvalidComponent, c)
	}
	if err != nil {
		return domain.ResolvedComponent{}, fmt.Errorf("resolve %s: %w", c.Kind(), err)
	}

	return domain.ResolvedComponent{Type: c.Kind(), Data: data}, nil
}

func (r *Resolver) gameInfo(ctx context.Context, c domain.GameInfoCard) (domain.GameInfoData, error) {
	if err := numericIDs(c.GameID, c.HomeTeamID, c.AwayTeamID); err != nil {
		return domain.GameInfoData{}, err
	}

	game, err := r.data.Game(ctx, c.GameID)
	if err != nil {
		return domain.GameInfoData{}, err
	}

	return domain.GameInfoData{
		GameID:          c.GameID,
		Location:        game.Venue,
		DateAndTime:     game.DateTime,
		HomeTeamName:    game.Home.Team.Name,
		AwayTeamName:    game.Away.Team.Name,
		HomeTeamLogoURL: game.Home.Team.LogoURL,
		AwayTeamLogoURL: game.Away.Team.LogoURL,
	}, nil
}

func (r *Resolver) lineBox(ctx context.Context, c domain.LineBox) (domain.LineBoxData, error) {
	if err := numericIDs(c.GameID); err != nil {
		return domain.LineBoxData{}, err
	}

	game, err := r.data.Game(ctx, c.GameID)
	if err != nil {
		return domain.LineBoxData{}, err
	}

	return domain.LineBoxData{
		GameID:        c.GameID,
		CurrentInning: c.CurrentInning,
		Score:         game.LineScore,
	}, nil
}

func (r *Resolver) playerCard(ctx context.Context, c domain.PlayerCard) (domain.PlayerCardData, error) {
	id, err := parseID("playerId", c.PlayerID)
	if err != nil {
		return domain.PlayerCardData{}, err
	}

	player, err := r.data.Player(ctx, id)
	if err != nil {
		return domain.PlayerCardData{}, err
	}

	return domain.PlayerCardData{
		PlayerID:           c.PlayerID,
		Player:             player,
		PlayerMatchSummary: c.PlayerMatchSummary,
	}, nil
}

func (r *Resolver) highlightVideo(ctx context.Context, c domain.HighlightVideo) (domain.HighlightVideoData, error) {
	if err := numericIDs(c.GameID); err != nil {
		return domain.HighlightVideoData{}, err
	}

	highlights, err := r.data.Highlights(ctx, c.GameID)
	if err != nil {
		return domain.HighlightVideoData{}, err
	}
	if c.Index < 0 || c.Index >= len(highlights) {
		return domain.HighlightVideoData{}, fmt.Errorf("%w: highlight %d of %d", domain.ErrIndexOutOfRange, c.Index, len(highlights))
	}

	h := highlights[c.Index]
	url, ok := h.PlaybackURL()
	if !ok {
		return domain.HighlightVideoData{}, fmt.Errorf("%w: highlight %d", domain.ErrNoPlaybackURL, c.Index)
	}

	return domain.HighlightVideoData{
		GameID:      c.GameID,
		Index:       c.Index,
		Title:       h.Title,
		Description: fmt.Sprintf("Description : %s , HeadLine : %s", h.Description, h.Headline),
		URL:         url,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
	}, nil
}

func (r *Resolver) teamLeaders(ctx context.Context, c domain.TeamLeaders) (domain.TeamLeadersData, error) {
	id, err := parseID("teamId", c.TeamID)
	if err != nil {
		return domain.TeamLeadersData{}, err
	}

	team, err := r.data.Team(ctx, id)
	if err != nil {
		return domain.TeamLeadersData{}, err
	}

	leaders, err := r.data.TeamLeaders(ctx, id, c.Season, c.GameType)
	if err != nil {
		return domain.TeamLeadersData{}, err
	}

	return domain.TeamLeadersData{
		TeamID:      c.TeamID,
		Season:      c.Season,
		GameType:    c.GameType,
		TeamDetails: team,
		Leaders:     leaders,
	}, nil
}

func parseID(field, v string) (int, error) {
	id, err := strconv.Atoi(v)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q is not a valid id", domain.ErrInvalidComponent, field, v)
	}
	return id, nil
}

// numericIDs checks every non-empty id.
func numericIDs(ids ...string) error {
	for _, v := range ids {
		if v == "" {
			continue
		}
		if _, err := parseID("id", v); err != nil {
			return err
		}
	}
	return nil
}
