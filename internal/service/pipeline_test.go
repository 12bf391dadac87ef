package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"rewind/internal/config"
	"rewind/internal/domain"
	"rewind/internal/service/mocks"
)

type progress struct {
	stage   domain.Stage
	section int
}

type PipelineTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	feeds    *mocks.MockFeedBuilder
	scripts  *mocks.MockScriptGenerator
	resolver *mocks.MockComponentResolver
	narrator *mocks.MockNarrator
	aligner  *mocks.MockAligner
	cache    *mocks.MockTimelineCache

	pipeline *Pipeline
	cfg      config.PipelineConfig
	logger   *slog.Logger

	req      domain.RewindRequest
	feed     *domain.Feed
	progress []progress
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.feeds = mocks.NewMockFeedBuilder(s.ctrl)
	s.scripts = mocks.NewMockScriptGenerator(s.ctrl)
	s.resolver = mocks.NewMockComponentResolver(s.ctrl)
	s.narrator = mocks.NewMockNarrator(s.ctrl)
	s.aligner = mocks.NewMockAligner(s.ctrl)
	s.cache = mocks.NewMockTimelineCache(s.ctrl)

	s.cfg = config.PipelineConfig{
		RequestDeadline:  5 * time.Second,
		FeedTimeout:      time.Second,
		ScriptTimeout:    time.Second,
		NarrationTimeout: time.Second,
		ResolveTimeout:   time.Second,
		AlignmentTimeout: time.Second,
		ModelRetry: config.RetryConfig{
			MaxAttempts:    2,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     time.Millisecond,
		},
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.pipeline = s.newPipeline(s.cfg)

	s.req = domain.RewindRequest{
		EventID:            "634594",
		LanguageCode:       "en",
		BackgroundMusicURL: "https://cdn.example.com/music.mp3",
	}.Normalize()
	s.feed = &domain.Feed{EventID: "634594", Language: domain.Language{Code: "en", Name: "English", Display: "English"}}
	s.progress = nil
}

func (s *PipelineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) newPipeline(cfg config.PipelineConfig) *Pipeline {
	return NewPipeline(s.feeds, s.scripts, s.resolver, s.narrator, s.aligner, s.cache, s.logger, cfg)
}

func (s *PipelineTestSuite) observe(stage domain.Stage, section int) {
	s.progress = append(s.progress, progress{stage, section})
}

func (s *PipelineTestSuite) expectCacheMiss() {
	s.cache.EXPECT().Get(gomock.Any(), s.req.Fingerprint()).Return(nil, false, nil).Times(2)
}

func (s *PipelineTestSuite) expectScript(sections ...domain.Section) {
	s.feeds.EXPECT().Build(gomock.Any(), s.req).Return(s.feed, nil)
	s.scripts.EXPECT().Generate(gomock.Any(), s.feed).Return(&domain.Script{Sections: sections}, nil)
}

func gameInfoSection(id int) domain.Section {
	return domain.Section{
		ID:          id,
		Narration:   "Welcome to today's rewind.",
		UIComponent: domain.GameInfoCard{GameID: "634594", HomeTeamID: "119", AwayTeamID: "147"},
	}
}

func highlightSection(id int) domain.Section {
	return domain.Section{
		ID:          id,
		Narration:   "Ohtani sends one deep to right.",
		UIComponent: domain.HighlightVideo{GameID: "634594", Index: 2, StartTime: "00:00:00", EndTime: "00:00:20"},
	}
}

func highlightData() domain.ResolvedComponent {
	return domain.ResolvedComponent{
		Type: domain.KindHighlightVideo,
		Data: domain.HighlightVideoData{
			GameID:    "634594",
			Index:     2,
			Title:     "Ohtani homers",
			URL:       "https://mlb-cuts-diamond.mlb.com/clip.mp4",
			StartTime: "00:00:00",
			EndTime:   "00:00:20",
		},
	}
}

func (s *PipelineTestSuite) decodeVideo(c domain.SectionComponent) domain.HighlightVideoData {
	s.Require().Equal(domain.KindHighlightVideo, c.Type)
	var data domain.HighlightVideoData
	s.Require().NoError(json.Unmarshal(c.Data, &data))
	return data
}

func (s *PipelineTestSuite) TestRewind_SingleSection() {
	ctx := context.Background()

	s.expectCacheMiss()
	s.expectScript(gameInfoSection(0))
	s.narrator.EXPECT().Render(gomock.Any(), "Welcome to today's rewind.", "en").
		Return(domain.Narration{URL: "https://storage.googleapis.com/audio/a.mp3", Duration: 12.3}, nil)
	s.resolver.EXPECT().Resolve(gomock.Any(), domain.GameInfoCard{GameID: "634594", HomeTeamID: "119", AwayTeamID: "147"}).
		Return(domain.ResolvedComponent{Type: domain.KindGameInfoCard, Data: domain.GameInfoData{GameID: "634594"}}, nil)
	s.cache.EXPECT().Put(gomock.Any(), s.req.Fingerprint(), gomock.Any()).Return(nil)

	timeline, err := s.pipeline.Rewind(ctx, s.req, s.observe)
	s.Require().NoError(err)

	s.Equal("634594", timeline.EventID)
	s.Equal(s.req.BackgroundMusicURL, timeline.BackgroundMusicURL)
	s.Require().Len(timeline.Sections, 1)
	s.Equal(12.3, timeline.Sections[0].SectionDuration)
	s.Equal(12.3, timeline.TotalDuration)

	components := timeline.Sections[0].Components
	s.Require().Len(components, 2)
	s.Equal(domain.KindDialogue, components[0].Type)
	s.Equal("https://storage.googleapis.com/audio/a.mp3", components[0].URL)
	s.Equal(12.3, components[0].Duration)
	s.Equal(domain.KindGameInfoCard, components[1].Type)
	s.JSONEq(`{"gameId":"634594","location":"","dateAndTime":"","homeTeamName":"","awayTeamName":"","homeTeamLogoURL":"","awayTeamLogoURL":""}`, string(components[1].Data))

	s.Equal([]progress{
		{domain.StageBuildingFeed, -1},
		{domain.StageGeneratingScript, -1},
		{domain.StageRenderingSections, 0},
		{domain.StageReconciling, -1},
		{domain.StageCached, -1},
		{domain.StageReturned, -1},
	}, s.progress)
}

func (s *PipelineTestSuite) TestRewind_ConcurrentIdenticalRequestsShareOneRun() {
	const callers = 5

	var (
		mu     sync.Mutex
		stored *domain.Timeline
		misses int
	)
	allWaiting := make(chan struct{})
	s.cache.EXPECT().Get(gomock.Any(), s.req.Fingerprint()).
		DoAndReturn(func(context.Context, string) (*domain.Timeline, bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if stored != nil {
				return stored, true, nil
			}
			misses++
			if misses == callers {
				close(allWaiting)
			}
			return nil, false, nil
		}).AnyTimes()
	s.cache.EXPECT().Put(gomock.Any(), s.req.Fingerprint(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, t *domain.Timeline) error {
			mu.Lock()
			defer mu.Unlock()
			stored = t
			return nil
		}).Times(1)

	s.feeds.EXPECT().Build(gomock.Any(), s.req).
		DoAndReturn(func(context.Context, domain.RewindRequest) (*domain.Feed, error) {
			select {
			case <-allWaiting:
			case <-time.After(time.Second):
			}
			return s.feed, nil
		}).Times(1)
	s.scripts.EXPECT().Generate(gomock.Any(), s.feed).
		Return(&domain.Script{Sections: []domain.Section{gameInfoSection(0)}}, nil).Times(1)
	s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").
		Return(domain.Narration{URL: "a", Duration: 12.3}, nil).Times(1)
	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(domain.ResolvedComponent{Type: domain.KindGameInfoCard, Data: domain.GameInfoData{}}, nil).Times(1)

	var wg sync.WaitGroup
	timelines := make([]*domain.Timeline, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			timelines[i], errs[i] = s.pipeline.Rewind(context.Background(), s.req, nil)
		}()
	}
	wg.Wait()

	for i := range callers {
		s.Require().NoError(errs[i])
		s.Equal(12.3, timelines[i].TotalDuration)
		s.Equal(s.req.BackgroundMusicURL, timelines[i].BackgroundMusicURL)
	}
}

func (s *PipelineTestSuite) TestRewind_TotalIsSumOfSections() {
	ctx := context.Background()

	s.expectCacheMiss()
	s.expectScript(gameInfoSection(0), gameInfoSection(1), gameInfoSection(2))
	gomock.InOrder(
		s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").Return(domain.Narration{URL: "a", Duration: 10.0}, nil),
		s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").Return(domain.Narration{URL: "b", Duration: 5.5}, nil),
		s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").Return(domain.Narration{URL: "c", Duration: 7.25}, nil),
	)
	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(domain.ResolvedComponent{Type: domain.KindGameInfoCard, Data: domain.GameInfoData{}}, nil).Times(3)
	s.cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	timeline, err := s.pipeline.Rewind(ctx, s.req, nil)
	s.Require().NoError(err)

	s.Require().Len(timeline.Sections, 3)
	for i, section := range timeline.Sections {
		s.Equal(i, section.SectionID)
	}
	s.Equal(22.75, timeline.TotalDuration)
}

func (s *PipelineTestSuite) TestRewind_HighlightAligned() {
	ctx := context.Background()

	s.expectCacheMiss()
	s.expectScript(highlightSection(0))
	s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").Return(domain.Narration{URL: "a", Duration: 20.0}, nil)
	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(highlightData(), nil)
	s.aligner.EXPECT().Align(gomock.Any(), "https://mlb-cuts-diamond.mlb.com/clip.mp4", "Ohtani sends one deep to right.", 20.0).
		Return(domain.ClipRange{Start: "00:00:10", End: "00:00:45", Duration: 35.0}, nil)
	s.cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	timeline, err := s.pipeline.Rewind(ctx, s.req, nil)
	s.Require().NoError(err)

	s.Equal(35.0, timeline.Sections[0].SectionDuration)
	s.Equal(35.0, timeline.TotalDuration)

	video := s.decodeVideo(timeline.Sections[0].Components[1])
	s.Equal("00:00:10", video.StartTime)
	s.Equal("00:00:45", video.EndTime)
	s.True(video.Aligned)
}

func (s *PipelineTestSuite) TestRewind_HighlightShorterThanNarration() {
	ctx := context.Background()

	s.expectCacheMiss()
	s.expectScript(highlightSection(0))
	s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").Return(domain.Narration{URL: "a", Duration: 20.0}, nil)
	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(highlightData(), nil)
	s.aligner.EXPECT().Align(gomock.Any(), gomock.Any(), gomock.Any(), 20.0).
		Return(domain.ClipRange{Start: "00:00:05", End: "00:00:15", Duration: 10.0}, nil)
	s.cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	timeline, err := s.pipeline.Rewind(ctx, s.req, nil)
	s.Require().NoError(err)

	s.Equal(20.0, timeline.Sections[0].SectionDuration)
}

func (s *PipelineTestSuite) TestRewind_AlignmentFailureFallsBackToNarration() {
	ctx := context.Background()

	s.expectCacheMiss()
	s.expectScript(highlightSection(0))
	s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").Return(domain.Narration{URL: "a", Duration: 20.0}, nil)
	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(highlightData(), nil)
	s.aligner.EXPECT().Align(gomock.Any(), gomock.Any(), gomock.Any(), 20.0).
		Return(domain.ClipRange{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, "1:2")).Times(2)
	s.cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	timeline, err := s.pipeline.Rewind(ctx, s.req, nil)
	s.Require().NoError(err)

	s.Equal(20.0, timeline.Sections[0].SectionDuration)
	s.Equal(20.0, timeline.TotalDuration)

	video := s.decodeVideo(timeline.Sections[0].Components[1])
	s.Equal("00:00:00", video.StartTime)
	s.Equal("00:00:20", video.EndTime)
	s.False(video.Aligned)
}

func (s *PipelineTestSuite) TestRewind_ComponentFailureBecomesPlaceholder() {
	ctx := context.Background()

	s.expectCacheMiss()
	s.expectScript(highlightSection(0))
	s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").Return(domain.Narration{URL: "a", Duration: 8.0}, nil)
	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(domain.ResolvedComponent{}, fmt.Errorf("resolve HighlightVideo: %w: highlight 2 of 1", domain.ErrIndexOutOfRange))
	s.cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	timeline, err := s.pipeline.Rewind(ctx, s.req, nil)
	s.Require().NoError(err)

	s.Equal(8.0, timeline.Sections[0].SectionDuration)
	component := timeline.Sections[0].Components[1]
	s.Equal(domain.KindUnavailable, component.Type)
	s.JSONEq(`{"requestedType":"HighlightVideo","reason":"highlight index out of range"}`, string(component.Data))
}

func (s *PipelineTestSuite) TestRewind_UnexpectedResolverErrorIsFatal() {
	ctx := context.Background()
	boom := errors.New("boom")

	s.expectCacheMiss()
	s.expectScript(gameInfoSection(0))
	s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").Return(domain.Narration{URL: "a", Duration: 8.0}, nil)
	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.ResolvedComponent{}, boom)

	_, err := s.pipeline.Rewind(ctx, s.req, nil)
	s.ErrorIs(err, boom)
}

func (s *PipelineTestSuite) TestRewind_NarrationFailureIsFatal() {
	ctx := context.Background()
	ttsErr := errors.New("speech synthesis failed")

	s.expectCacheMiss()
	s.expectScript(gameInfoSection(0), gameInfoSection(1))
	s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").Return(domain.Narration{}, ttsErr)

	_, err := s.pipeline.Rewind(ctx, s.req, nil)
	s.ErrorIs(err, ttsErr)
	s.Contains(err.Error(), "render section 0")
}

func (s *PipelineTestSuite) TestRewind_CacheHit() {
	ctx := context.Background()
	cached := &domain.Timeline{
		EventID:            "634594",
		TotalDuration:      12.3,
		BackgroundMusicURL: "https://cdn.example.com/other.mp3",
		Sections:           []domain.ResolvedSection{{SectionID: 0, SectionDuration: 12.3}},
	}

	s.cache.EXPECT().Get(gomock.Any(), s.req.Fingerprint()).Return(cached, true, nil)

	timeline, err := s.pipeline.Rewind(ctx, s.req, s.observe)
	s.Require().NoError(err)

	s.Equal(12.3, timeline.TotalDuration)
	s.Equal(s.req.BackgroundMusicURL, timeline.BackgroundMusicURL)
	s.Equal("https://cdn.example.com/other.mp3", cached.BackgroundMusicURL)
	s.Equal([]progress{{domain.StageCached, -1}}, s.progress)
}

func (s *PipelineTestSuite) TestRewind_CacheHitIgnoresFocusOrder() {
	ctx := context.Background()
	first := s.req
	first.FocusPlayers = []string{"Shohei Ohtani", "Mookie Betts"}
	second := s.req
	second.FocusPlayers = []string{"Mookie Betts", "Shohei Ohtani"}

	s.cache.EXPECT().Get(gomock.Any(), first.Fingerprint()).Return(&domain.Timeline{EventID: "634594"}, true, nil).Times(2)

	_, err := s.pipeline.Rewind(ctx, first, nil)
	s.Require().NoError(err)
	_, err = s.pipeline.Rewind(ctx, second, nil)
	s.Require().NoError(err)
}

func (s *PipelineTestSuite) TestRewind_CacheErrorsAreNotFatal() {
	ctx := context.Background()

	s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("connection refused")).Times(2)
	s.expectScript(gameInfoSection(0))
	s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").Return(domain.Narration{URL: "a", Duration: 4.0}, nil)
	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(domain.ResolvedComponent{Type: domain.KindGameInfoCard, Data: domain.GameInfoData{}}, nil)
	s.cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	timeline, err := s.pipeline.Rewind(ctx, s.req, s.observe)
	s.Require().NoError(err)
	s.Equal(4.0, timeline.TotalDuration)
	s.NotContains(s.progress, progress{domain.StageCached, -1})
}

func (s *PipelineTestSuite) TestRewind_RetriesMalformedScript() {
	ctx := context.Background()

	s.expectCacheMiss()
	s.feeds.EXPECT().Build(gomock.Any(), s.req).Return(s.feed, nil)
	gomock.InOrder(
		s.scripts.EXPECT().Generate(gomock.Any(), s.feed).
			Return(nil, fmt.Errorf("%w: section 1 has id 2", domain.ErrMalformedScript)),
		s.scripts.EXPECT().Generate(gomock.Any(), s.feed).
			Return(&domain.Script{Sections: []domain.Section{gameInfoSection(0)}}, nil),
	)
	s.narrator.EXPECT().Render(gomock.Any(), gomock.Any(), "en").Return(domain.Narration{URL: "a", Duration: 3.0}, nil)
	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(domain.ResolvedComponent{Type: domain.KindGameInfoCard, Data: domain.GameInfoData{}}, nil)
	s.cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	timeline, err := s.pipeline.Rewind(ctx, s.req, nil)
	s.Require().NoError(err)
	s.Len(timeline.Sections, 1)
}

func (s *PipelineTestSuite) TestRewind_ScriptFailureIsFatal() {
	ctx := context.Background()

	s.expectCacheMiss()
	s.feeds.EXPECT().Build(gomock.Any(), s.req).Return(s.feed, nil)
	s.scripts.EXPECT().Generate(gomock.Any(), s.feed).
		Return(nil, fmt.Errorf("%w: no sections", domain.ErrMalformedScript)).Times(2)

	_, err := s.pipeline.Rewind(ctx, s.req, nil)
	s.ErrorIs(err, domain.ErrMalformedScript)
}

func (s *PipelineTestSuite) TestRewind_FeedFailureIsFatal() {
	ctx := context.Background()

	s.expectCacheMiss()
	s.feeds.EXPECT().Build(gomock.Any(), s.req).
		Return(nil, fmt.Errorf("%w: fetch game: status 503", domain.ErrUpstreamData))

	_, err := s.pipeline.Rewind(ctx, s.req, nil)
	s.ErrorIs(err, domain.ErrUpstreamData)
	s.NotErrorIs(err, domain.ErrTimeout)
}

func (s *PipelineTestSuite) TestRewind_StageTimeout() {
	ctx := context.Background()
	cfg := s.cfg
	cfg.FeedTimeout = 20 * time.Millisecond
	pipeline := s.newPipeline(cfg)

	s.expectCacheMiss()
	s.feeds.EXPECT().Build(gomock.Any(), s.req).
		DoAndReturn(func(ctx context.Context, _ domain.RewindRequest) (*domain.Feed, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err := pipeline.Rewind(ctx, s.req, nil)
	s.Require().ErrorIs(err, domain.ErrTimeout)
	s.NotErrorIs(err, domain.ErrUpstreamData)

	var timeout *domain.TimeoutError
	s.Require().ErrorAs(err, &timeout)
	s.Equal(domain.StageBuildingFeed, timeout.Stage)
}

func (s *PipelineTestSuite) TestRewind_RequestDeadline() {
	ctx := context.Background()
	cfg := s.cfg
	cfg.RequestDeadline = 20 * time.Millisecond
	pipeline := s.newPipeline(cfg)

	s.expectCacheMiss()
	s.feeds.EXPECT().Build(gomock.Any(), s.req).
		DoAndReturn(func(ctx context.Context, _ domain.RewindRequest) (*domain.Feed, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err := pipeline.Rewind(ctx, s.req, nil)

	var timeout *domain.TimeoutError
	s.Require().ErrorAs(err, &timeout)
	s.Equal(domain.StageRequest, timeout.Stage)
}

func (s *PipelineTestSuite) TestRewind_InvalidRequest() {
	_, err := s.pipeline.Rewind(context.Background(), domain.RewindRequest{LanguageCode: "en"}, nil)
	s.ErrorIs(err, domain.ErrInvalidRequest)
}
