package mlb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rewind/internal/domain"
	"rewind/internal/retry"
)

const (
	SourceID = "mlb"

	// leader categories shown on the team leaders panel
	LeaderCategories = "onBasePlusSlugging,earnedRunAverage,fieldingPercentage"
	leadersLimit     = 3

	maxMediaBytes = 256 << 20
)

// Config holds MLB Stats API client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source reads game, team and player data from the MLB Stats API.
type Source struct {
	httpClient *http.Client
	baseURL    string
	retry      retry.Policy
	logger     *slog.Logger
	now        func() time.Time
	mediaLimit int64
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		retry: retry.Policy{
			MaxAttempts:    cfg.MaxAttempts,
			InitialBackoff: cfg.InitialBackoff,
			MaxBackoff:     cfg.MaxBackoff,
		},
		logger:     logger.With("source", SourceID),
		now:        time.Now,
		mediaLimit: maxMediaBytes,
	}
}

// Game fetches the live feed of a game: metadata, plays, line score and box score.
func (s *Source) Game(ctx context.Context, gameID string) (*domain.Game, error) {
	var feed LiveFeed
	if err := s.get(ctx, fmt.Sprintf("/api/v1.1/game/%s/feed/live", url.PathEscape(gameID)), nil, &feed); err != nil {
		return nil, fmt.Errorf("fetch live feed %s: %w", gameID, err)
	}
	if feed.GameData.Teams.Home.ID == 0 || feed.GameData.Teams.Away.ID == 0 {
		return nil, fmt.Errorf("%w: live feed %s has no teams", domain.ErrUpstreamData, gameID)
	}
	return s.transformGame(gameID, &feed), nil
}

// Highlights lists the highlight clips of a game in provider order.
func (s *Source) Highlights(ctx context.Context, gameID string) ([]domain.Highlight, error) {
	var content ContentResponse
	if err := s.get(ctx, fmt.Sprintf("/api/v1/game/%s/content", url.PathEscape(gameID)), nil, &content); err != nil {
		return nil, fmt.Errorf("fetch content %s: %w", gameID, err)
	}
	return transformHighlights(content.Highlights.Highlights.Items), nil
}

// TeamLeaders returns the top three players of each leader category.
func (s *Source) TeamLeaders(ctx context.Context, teamID int, season, gameType string) ([]domain.LeaderCategory, error) {
	q := url.Values{}
	q.Set("leaderCategories", LeaderCategories)
	q.Set("season", season)
	q.Set("leaderGameTypes", gameType)
	q.Set("limit", strconv.Itoa(leadersLimit))

	var resp LeadersResponse
	if err := s.get(ctx, fmt.Sprintf("/api/v1/teams/%d/leaders", teamID), q, &resp); err != nil {
		return nil, fmt.Errorf("fetch team leaders %d: %w", teamID, err)
	}
	return transformLeaders(&resp), nil
}

func (s *Source) Team(ctx context.Context, teamID int) (*domain.Team, error) {
	var resp TeamsResponse
	if err := s.get(ctx, fmt.Sprintf("/api/v1/teams/%d", teamID), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch team %d: %w", teamID, err)
	}
	if len(resp.Teams) == 0 {
		return nil, fmt.Errorf("%w: team %d", domain.ErrNotFound, teamID)
	}
	team := transformTeam(resp.Teams[0])
	return &team, nil
}

// Player fetches a player's profile together with career stats.
func (s *Source) Player(ctx context.Context, playerID int) (*domain.Player, error) {
	q := url.Values{}
	q.Set("hydrate", "stats(group=[hitting,pitching,fielding],type=[career],sportId=1)")

	var resp PeopleResponse
	if err := s.get(ctx, fmt.Sprintf("/api/v1/people/%d", playerID), q, &resp); err != nil {
		return nil, fmt.Errorf("fetch player %d: %w", playerID, err)
	}
	if len(resp.People) == 0 {
		return nil, fmt.Errorf("%w: player %d", domain.ErrNotFound, playerID)
	}
	return s.transformPlayer(&resp.People[0]), nil
}

func (s *Source) get(ctx context.Context, path string, query url.Values, out any) error {
	u := s.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return retry.Do(ctx, s.retry, s.logger, "GET "+path, func(ctx context.Context) error {
		return s.doRequest(ctx, u, out)
	})
}

func (s *Source) doRequest(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return retry.Permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Rewind/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return retry.Permanent(err)
		}
		return fmt.Errorf("%w: execute request: %w", domain.ErrUpstreamData, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return retry.Permanent(fmt.Errorf("%w: %s", domain.ErrNotFound, endpoint))
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: unexpected status: %d", domain.ErrUpstreamData, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return retry.Permanent(fmt.Errorf("%w: unexpected status: %d", domain.ErrUpstreamData, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return retry.Permanent(fmt.Errorf("%w: decode response: %w", domain.ErrUpstreamData, err))
	}

	return nil
}

// Download fetches a highlight rendition. Clips are a few megabytes, so the
// body is read into memory.
func (s *Source) Download(ctx context.Context, mediaURL string) ([]byte, error) {
	var body []byte
	err := retry.Do(ctx, s.retry, s.logger, "GET media", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
		if err != nil {
			return retry.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("User-Agent", "Rewind/1.0")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Permanent(err)
			}
			return fmt.Errorf("execute request: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: media status %d", domain.ErrUpstreamData, resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return retry.Permanent(fmt.Errorf("%w: media status %d", domain.ErrUpstreamData, resp.StatusCode))
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, s.mediaLimit+1))
		if err != nil {
			return fmt.Errorf("read media: %w", err)
		}
		if int64(len(body)) > s.mediaLimit {
			body = nil
			return retry.Permanent(fmt.Errorf("%w: media larger than %d bytes", domain.ErrUpstreamData, s.mediaLimit))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", mediaURL, err)
	}
	return body, nil
}
