package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"rewind/internal/config"
	"rewind/internal/domain"
	"rewind/internal/retry"
)

// Pipeline turns a rewind request into a timeline: feed, script, then one
// narrated and resolved section at a time.
type Pipeline struct {
	feeds    FeedBuilder
	scripts  ScriptGenerator
	resolver ComponentResolver
	narrator Narrator
	aligner  Aligner
	cache    TimelineCache
	inflight singleflight.Group
	retry    retry.Policy
	logger   *slog.Logger
	config   config.PipelineConfig
}

func NewPipeline(
	feeds FeedBuilder,
	scripts ScriptGenerator,
	resolver ComponentResolver,
	narrator Narrator,
	aligner Aligner,
	cache TimelineCache,
	logger *slog.Logger,
	cfg config.PipelineConfig,
) *Pipeline {
	return &Pipeline{
		feeds:    feeds,
		scripts:  scripts,
		resolver: resolver,
		narrator: narrator,
		aligner:  aligner,
		cache:    cache,
		retry: retry.Policy{
			MaxAttempts:    cfg.ModelRetry.MaxAttempts,
			InitialBackoff: cfg.ModelRetry.InitialBackoff,
			MaxBackoff:     cfg.ModelRetry.MaxBackoff,
		},
		logger: logger.With("component", "pipeline"),
		config: cfg,
	}
}

// Rewind returns the timeline for req, from the cache when possible.
// Concurrent calls for the same fingerprint share one computation; only the
// first caller's observer sees the intermediate stages.
func (p *Pipeline) Rewind(ctx context.Context, req domain.RewindRequest, observe domain.Observer) (*domain.Timeline, error) {
	if observe == nil {
		observe = func(domain.Stage, int) {}
	}

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fingerprint := req.Fingerprint()
	logger := p.logger.With("event_id", req.EventID, "fingerprint", fingerprint)

	if timeline, ok := p.cached(ctx, logger, fingerprint); ok {
		observe(domain.StageCached, -1)
		return withMusic(timeline, req.BackgroundMusicURL), nil
	}

	ch := p.inflight.DoChan(fingerprint, func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.config.RequestDeadline)
		defer cancel()
		return p.run(runCtx, logger, req, fingerprint, observe)
	})

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &domain.TimeoutError{Stage: domain.StageRequest, Err: ctx.Err()}
		}
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logger.Debug("joined in-flight rewind")
		}
		observe(domain.StageReturned, -1)
		return withMusic(res.Val.(*domain.Timeline), req.BackgroundMusicURL), nil
	}
}

func (p *Pipeline) cached(ctx context.Context, logger *slog.Logger, fingerprint string) (*domain.Timeline, bool) {
	timeline, ok, err := p.cache.Get(ctx, fingerprint)
	if err != nil {
		logger.Warn("read cached timeline", "error", err)
		return nil, false
	}
	return timeline, ok
}

func (p *Pipeline) run(ctx context.Context, logger *slog.Logger, req domain.RewindRequest, fingerprint string, observe domain.Observer) (*domain.Timeline, error) {
	// A concurrent computation may have finished between the first cache
	// miss and this one becoming the leader.
	if timeline, ok := p.cached(ctx, logger, fingerprint); ok {
		return timeline, nil
	}

	observe(domain.StageBuildingFeed, -1)
	feed, err := runStage(ctx, domain.StageBuildingFeed, p.config.FeedTimeout, func(ctx context.Context) (*domain.Feed, error) {
		return p.feeds.Build(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("build feed: %w", err)
	}

	observe(domain.StageGeneratingScript, -1)
	script, err := runStage(ctx, domain.StageGeneratingScript, p.config.ScriptTimeout, func(ctx context.Context) (*domain.Script, error) {
		var script *domain.Script
		err := retry.Do(ctx, p.retry, logger, "generate script", func(ctx context.Context) error {
			var err error
			script, err = p.scripts.Generate(ctx, feed)
			return err
		})
		return script, err
	})
	if err != nil {
		return nil, fmt.Errorf("generate script: %w", err)
	}

	logger.Info("script generated", "sections", len(script.Sections))

	timeline := &domain.Timeline{
		EventID:            req.EventID,
		BackgroundMusicURL: req.BackgroundMusicURL,
		Sections:           make([]domain.ResolvedSection, 0, len(script.Sections)),
	}

	for _, section := range script.Sections {
		observe(domain.StageRenderingSections, section.ID)
		resolved, err := p.renderSection(ctx, logger.With("section_id", section.ID), req, section)
		if err != nil {
			return nil, fmt.Errorf("render section %d: %w", section.ID, err)
		}
		timeline.Sections = append(timeline.Sections, resolved)
	}

	observe(domain.StageReconciling, -1)
	timeline.Recalculate()

	if err := p.cache.Put(ctx, fingerprint, timeline); err != nil {
		logger.Warn("store timeline in cache", "error", err)
	} else {
		observe(domain.StageCached, -1)
	}

	logger.Info("rewind assembled",
		"sections", len(timeline.Sections),
		"total_duration", timeline.TotalDuration,
	)
	return timeline, nil
}

func (p *Pipeline) renderSection(ctx context.Context, logger *slog.Logger, req domain.RewindRequest, section domain.Section) (domain.ResolvedSection, error) {
	narration, err := runStage(ctx, domain.StageNarration, p.config.NarrationTimeout, func(ctx context.Context) (domain.Narration, error) {
		return p.narrator.Render(ctx, section.Narration, req.LanguageCode)
	})
	if err != nil {
		return domain.ResolvedSection{}, fmt.Errorf("render narration: %w", err)
	}

	resolved, err := runStage(ctx, domain.StageResolve, p.config.ResolveTimeout, func(ctx context.Context) (domain.ResolvedComponent, error) {
		return p.resolver.Resolve(ctx, section.UIComponent)
	})
	if err != nil {
		if ctx.Err() != nil || !(domain.IsComponentError(err) || errors.Is(err, domain.ErrTimeout)) {
			return domain.ResolvedSection{}, err
		}
		logger.Warn("component unavailable",
			"type", section.UIComponent.Kind(),
			"error", err,
		)
		resolved = unavailable(section.UIComponent.Kind(), err)
	}

	duration := narration.Duration

	if video, ok := resolved.Data.(domain.HighlightVideoData); ok {
		clip, err := p.align(ctx, logger, video.URL, section.Narration, narration.Duration)
		switch {
		case err == nil:
			video.StartTime = clip.Start
			video.EndTime = clip.End
			video.Aligned = true
			duration = max(narration.Duration, clip.Duration)
		case ctx.Err() != nil:
			return domain.ResolvedSection{}, err
		default:
			logger.Warn("highlight alignment failed, keeping narration timing", "error", err)
		}
		resolved.Data = video
	}

	component, err := domain.NewSectionComponent(resolved)
	if err != nil {
		return domain.ResolvedSection{}, err
	}

	return domain.ResolvedSection{
		SectionID:       section.ID,
		SectionDuration: duration,
		Components:      []domain.SectionComponent{domain.NewDialogue(narration), component},
	}, nil
}

func (p *Pipeline) align(ctx context.Context, logger *slog.Logger, sourceURL, narration string, duration float64) (domain.ClipRange, error) {
	return runStage(ctx, domain.StageAlignment, p.config.AlignmentTimeout, func(ctx context.Context) (domain.ClipRange, error) {
		var clip domain.ClipRange
		err := retry.Do(ctx, p.retry, logger, "align highlight", func(ctx context.Context) error {
			var err error
			clip, err = p.aligner.Align(ctx, sourceURL, narration, duration)
			return err
		})
		return clip, err
	})
}

// runStage bounds fn by timeout and reports an expired deadline as a
// TimeoutError naming the stage, or the request when the outer deadline hit.
func runStage[T any](ctx context.Context, stage domain.Stage, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	stageCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := fn(stageCtx)
	if err != nil && errors.Is(stageCtx.Err(), context.DeadlineExceeded) {
		if ctx.Err() != nil {
			stage = domain.StageRequest
		}
		var zero T
		return zero, &domain.TimeoutError{Stage: stage, Err: stageCtx.Err()}
	}
	return out, err
}

func unavailable(kind domain.ComponentKind, err error) domain.ResolvedComponent {
	reason := "data unavailable"
	switch {
	case errors.Is(err, domain.ErrTimeout):
		reason = "timed out"
	case errors.Is(err, domain.ErrInvalidComponent):
		reason = "invalid component"
	case errors.Is(err, domain.ErrNotFound):
		reason = "not found"
	case errors.Is(err, domain.ErrIndexOutOfRange):
		reason = "highlight index out of range"
	case errors.Is(err, domain.ErrNoPlaybackURL):
		reason = "no playable video"
	}
	return domain.ResolvedComponent{
		Type: domain.KindUnavailable,
		Data: domain.UnavailableData{RequestedType: kind, Reason: reason},
	}
}

func withMusic(t *domain.Timeline, musicURL string) *domain.Timeline {
	out := *t
	out.BackgroundMusicURL = musicURL
	return &out
}
