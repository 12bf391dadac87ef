package feed

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"rewind/internal/domain"
	"rewind/internal/feed/mocks"
)

type BuilderTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	data    *mocks.MockGameData
	builder *Builder
}

func (s *BuilderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.data = mocks.NewMockGameData(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.builder = NewBuilder(s.data, logger)
}

func (s *BuilderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func ptr(v float64) *float64 { return &v }

func testGame() *domain.Game {
	return &domain.Game{
		ID:       "634594",
		Season:   "2021",
		GameType: "R",
		DateTime: "2021-04-06T23:10:00Z",
		Venue:    "loanDepot park",
		Weather:  "Roof Closed, 72°F",
		Status:   "Final",
		Home: domain.GameTeam{
			Team:    domain.Team{ID: 146, Name: "Miami Marlins"},
			Roster:  []domain.RosterEntry{{PlayerID: 645261, Name: "Sandy Alcantara", Position: "P", Jersey: "22"}},
			Batting: []domain.BattingLine{{PlayerID: 665862, Name: "Jazz Chisholm Jr.", Position: "2B", AtBats: 4, Hits: 2, RBI: 2}},
			Pitching: []domain.PitchingLine{
				{PlayerID: 645261, Name: "Sandy Alcantara", InningsPitched: "7.0", StrikeOuts: 8},
			},
		},
		Away: domain.GameTeam{
			Team:   domain.Team{ID: 138, Name: "St. Louis Cardinals"},
			Roster: []domain.RosterEntry{{PlayerID: 571448, Name: "Nolan Arenado", Position: "3B", Jersey: "28"}},
		},
		Plays: []domain.Play{
			{
				Inning: 1, HalfInning: "top",
				Description:  "Nolan Arenado homers (1) on a fly ball to left field.",
				Batter:       "Nolan Arenado",
				Pitcher:      "Sandy Alcantara",
				AwayScore:    1,
				ExitVelocity: ptr(104.2),
				Pitches:      []domain.Pitch{{Type: "Four-Seam Fastball", Speed: ptr(97.1)}},
				Runners:      []domain.RunnerMove{{Runner: "Nolan Arenado", End: "score", Event: "Home Run"}},
			},
			{Inning: 2, HalfInning: "bottom", Description: "Jazz Chisholm Jr. doubles.", Batter: "Jazz Chisholm Jr."},
		},
		LineScore: domain.LineScore{
			CurrentInning: 9,
			Innings: []domain.InningScore{
				{Inning: 1, Away: domain.InningLine{Runs: 1, Hits: 1}},
				{Inning: 2, Home: domain.InningLine{Runs: 2, Hits: 2}},
			},
			Home: domain.InningLine{Runs: 2, Hits: 3},
			Away: domain.InningLine{Runs: 1, Hits: 1, Errors: 1},
		},
	}
}

func testHighlights() []domain.Highlight {
	return []domain.Highlight{
		{Index: 0, Title: "Stream only", Playbacks: []domain.Playback{{Name: "hlsCloud", URL: "https://x/0.m3u8"}}},
		{Index: 1, Title: "Arenado's solo homer", Description: "Arenado goes deep", Duration: "00:00:42",
			Playbacks: []domain.Playback{{Name: "mp4Avc", URL: "https://x/1.mp4"}}},
	}
}

func (s *BuilderTestSuite) expectUpstream(game *domain.Game) {
	s.data.EXPECT().Game(gomock.Any(), "634594").Return(game, nil)
	s.data.EXPECT().Highlights(gomock.Any(), "634594").Return(testHighlights(), nil)
	s.data.EXPECT().TeamLeaders(gomock.Any(), 146, "2021", "R").Return([]domain.LeaderCategory{
		{Category: "earnedRunAverage", Leaders: []domain.Leader{{Rank: 1, PlayerID: 645261, Name: "Sandy Alcantara", Value: "2.10"}}},
	}, nil)
	s.data.EXPECT().TeamLeaders(gomock.Any(), 138, "2021", "R").Return(nil, nil)
}

func (s *BuilderTestSuite) TestBuild() {
	s.expectUpstream(testGame())

	feed, err := s.builder.Build(context.Background(), domain.RewindRequest{
		EventID:      "634594",
		FocusPlayers: []string{"Nolan Arenado"},
		LanguageCode: "EN",
	})
	s.Require().NoError(err)

	names := make([]string, 0, len(feed.Blocks))
	for _, b := range feed.Blocks {
		names = append(names, b.Name)
	}
	s.Equal([]string{
		BlockGameID, BlockPreferences, BlockGameInfo, BlockBoxScore, BlockLeaders,
		BlockLanguage, BlockRoster, BlockLineScore, BlockPlayByPlay, BlockHighlights,
	}, names)

	s.Equal("en", feed.Language.Code)

	prefs, _ := feed.Block(BlockPreferences)
	s.Contains(prefs, "Players: Nolan Arenado")

	info, _ := feed.Block(BlockGameInfo)
	s.Contains(info, "Miami Marlins (ID: 146)")
	s.Contains(info, "Venue: loanDepot park")

	box, _ := feed.Block(BlockBoxScore)
	s.Contains(box, "Jazz Chisholm Jr. (ID: 665862, 2B): 4 0 2 2 0 0 0")

	leaders, _ := feed.Block(BlockLeaders)
	s.Contains(leaders, "earnedRunAverage: 1. Sandy Alcantara (ID: 645261) 2.10")
	s.Contains(leaders, "St. Louis Cardinals (team ID: 138, season 2021, game type R):\n  no leaders reported")

	roster, _ := feed.Block(BlockRoster)
	s.Contains(roster, "Nolan Arenado (ID: 571448, 3B, #28)")

	lines, _ := feed.Block(BlockLineScore)
	s.Contains(lines, "Total | 1-1-1 | 2-3-0")

	plays, _ := feed.Block(BlockPlayByPlay)
	s.Contains(plays, "Top of inning 1:")
	s.Contains(plays, "exit velocity 104.2 mph")
	s.Contains(plays, "launch angle N/A")
	s.Contains(plays, "pitch: Four-Seam Fastball, 97.1 mph, spin N/A")
	s.Contains(plays, "runner: Nolan Arenado to score (Home Run)")
	s.Contains(plays, "Bottom of inning 2:")

	hl, _ := feed.Block(BlockHighlights)
	s.Contains(hl, "Index 1: Arenado's solo homer")
	s.NotContains(hl, "Stream only")

	text := feed.Text()
	s.True(strings.HasPrefix(text, "### Game ID\n634594\n"))
	s.Less(strings.Index(text, "### Box Score"), strings.Index(text, "### Highlights"))
}

func (s *BuilderTestSuite) TestBuild_Deterministic() {
	s.expectUpstream(testGame())
	s.expectUpstream(testGame())

	req := domain.RewindRequest{EventID: "634594", FocusTeams: []string{"b", "a"}, LanguageCode: "es"}
	first, err := s.builder.Build(context.Background(), req)
	s.Require().NoError(err)

	req.FocusTeams = []string{"a", "b", "a"}
	second, err := s.builder.Build(context.Background(), req)
	s.Require().NoError(err)

	s.Equal(first.Text(), second.Text())
}

func (s *BuilderTestSuite) TestBuild_NoPreferences() {
	s.expectUpstream(testGame())

	feed, err := s.builder.Build(context.Background(), domain.RewindRequest{EventID: "634594", LanguageCode: "ja"})
	s.Require().NoError(err)

	prefs, _ := feed.Block(BlockPreferences)
	s.Contains(prefs, "No specific preferences")
	lang, _ := feed.Block(BlockLanguage)
	s.Contains(lang, "Japanese (ja)")
}

func (s *BuilderTestSuite) TestBuild_UnsupportedLanguage() {
	_, err := s.builder.Build(context.Background(), domain.RewindRequest{EventID: "634594", LanguageCode: "de"})
	s.ErrorIs(err, domain.ErrUnsupportedLanguage)
}

func (s *BuilderTestSuite) TestBuild_GameFailure() {
	s.data.EXPECT().Game(gomock.Any(), "634594").Return(nil, errors.New("connection reset"))
	s.data.EXPECT().Highlights(gomock.Any(), "634594").Return(testHighlights(), nil).AnyTimes()

	_, err := s.builder.Build(context.Background(), domain.RewindRequest{EventID: "634594", LanguageCode: "en"})
	s.ErrorIs(err, domain.ErrUpstreamData)
}

func (s *BuilderTestSuite) TestBuild_LeadersFailure() {
	s.data.EXPECT().Game(gomock.Any(), "634594").Return(testGame(), nil)
	s.data.EXPECT().Highlights(gomock.Any(), "634594").Return(testHighlights(), nil)
	s.data.EXPECT().TeamLeaders(gomock.Any(), 146, "2021", "R").Return(nil, domain.ErrNotFound)
	s.data.EXPECT().TeamLeaders(gomock.Any(), 138, "2021", "R").Return(nil, nil).AnyTimes()

	_, err := s.builder.Build(context.Background(), domain.RewindRequest{EventID: "634594", LanguageCode: "en"})
	s.ErrorIs(err, domain.ErrUpstreamData)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *BuilderTestSuite) TestBuild_ContextDone() {
	ctx, cancel := context.WithCancel(context.Background())
	s.data.EXPECT().Game(gomock.Any(), "634594").DoAndReturn(func(ctx context.Context, _ string) (*domain.Game, error) {
		cancel()
		return nil, ctx.Err()
	})
	s.data.EXPECT().Highlights(gomock.Any(), "634594").Return(testHighlights(), nil).AnyTimes()

	_, err := s.builder.Build(ctx, domain.RewindRequest{EventID: "634594", LanguageCode: "en"})
	s.ErrorIs(err, context.Canceled)
	s.NotErrorIs(err, domain.ErrUpstreamData)
}
