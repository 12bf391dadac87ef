package highlight

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/sync/singleflight"

	"rewind/internal/domain"
)

const videoContentType = "video/mp4"

// Aligner picks the part of a highlight video that matches a narration.
type Aligner struct {
	fetcher VideoFetcher
	store   VideoStore
	memo    VideoMemo
	model   VideoModel
	logger  *slog.Logger

	mirrors singleflight.Group
}

func NewAligner(fetcher VideoFetcher, store VideoStore, memo VideoMemo, model VideoModel, logger *slog.Logger) *Aligner {
	return &Aligner{
		fetcher: fetcher,
		store:   store,
		memo:    memo,
		model:   model,
		logger:  logger.With("component", "highlight"),
	}
}

type rangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Align returns a normalized clip range for the narration.
func (a *Aligner) Align(ctx context.Context, sourceURL, narration string, narrationDuration float64) (domain.ClipRange, error) {
	ref, err := a.mirror(ctx, sourceURL)
	if err != nil {
		return domain.ClipRange{}, fmt.Errorf("mirror video: %w", err)
	}

	raw, err := a.model.SelectRange(ctx, ref, buildPrompt(narration, narrationDuration))
	if err != nil {
		return domain.ClipRange{}, fmt.Errorf("select range: %w", err)
	}

	clip, err := ParseRange(raw)
	if err != nil {
		return domain.ClipRange{}, err
	}

	a.logger.Debug("clip aligned",
		"source", sourceURL,
		"start", clip.Start,
		"end", clip.End,
		"narration_duration", narrationDuration,
	)
	return clip, nil
}

// ParseRange decodes a {start,end} answer and normalizes both timestamps.
func ParseRange(raw string) (domain.ClipRange, error) {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")

	var r rangeResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(body)), &r); err != nil {
		return domain.ClipRange{}, fmt.Errorf("%w: decode range: %w", domain.ErrInvalidTimestamp, err)
	}

	start, err := domain.NormalizeTimestamp(r.Start)
	if err != nil {
		return domain.ClipRange{}, err
	}
	end, err := domain.NormalizeTimestamp(r.End)
	if err != nil {
		return domain.ClipRange{}, err
	}

	startSecs, _ := domain.TimestampSeconds(start)
	endSecs, _ := domain.TimestampSeconds(end)
	if endSecs <= startSecs {
		return domain.ClipRange{}, fmt.Errorf("%w: end %s is not after start %s", domain.ErrInvalidTimestamp, end, start)
	}

	return domain.ClipRange{
		Start:    start,
		End:      end,
		Duration: float64(endSecs - startSecs),
	}, nil
}

// mirror copies the source video into private storage once per URL.
func (a *Aligner) mirror(ctx context.Context, sourceURL string) (string, error) {
	ref, found, err := a.memo.Get(ctx, sourceURL)
	if err != nil {
		a.logger.Warn("failed to read video memo", "source", sourceURL, "error", err)
	} else if found {
		return ref, nil
	}

	v, err, _ := a.mirrors.Do(sourceURL, func() (any, error) {
		// another caller may have finished mirroring since the first lookup
		if ref, found, err := a.memo.Get(ctx, sourceURL); err == nil && found {
			return ref, nil
		}

		data, err := a.fetcher.Download(ctx, sourceURL)
		if err != nil {
			return "", fmt.Errorf("download %s: %w", sourceURL, err)
		}

		ref, err := a.store.Upload(ctx, objectName(sourceURL), videoContentType, data)
		if err != nil {
			return "", fmt.Errorf("upload %s: %w", sourceURL, err)
		}

		if err := a.memo.Put(ctx, sourceURL, ref); err != nil {
			a.logger.Warn("failed to store video memo", "source", sourceURL, "error", err)
		}

		a.logger.Info("video mirrored", "source", sourceURL, "ref", ref, "bytes", len(data))
		return ref, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func objectName(sourceURL string) string {
	sum := sha256.Sum256([]byte(sourceURL))
	base := path.Base(sourceURL)
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	if !strings.HasSuffix(base, ".mp4") {
		base = "clip.mp4"
	}
	return "highlights/" + hex.EncodeToString(sum[:8]) + "-" + base
}
