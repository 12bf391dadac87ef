package narration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"rewind/internal/domain"
)

const audioContentType = "audio/mpeg"

// DefaultVoices maps each catalogue language to its narration voice.
var DefaultVoices = map[string]string{
	"en": "0m1WGWVzxS7KbWobXtnw",
	"es": "9oPKasc15pfAbMr7N6Gs",
	"fr": "O31r762Gb3WFygrEOGh0",
	"ja": "3JDquces8E8bkmvbh6Bc",
}

// Renderer turns narration text into a published, timed audio clip.
type Renderer struct {
	synth      Synthesizer
	normalizer Normalizer
	probe      DurationProbe
	blobs      BlobStore
	voices     map[string]string
	logger     *slog.Logger
	newName    func() string
}

func NewRenderer(
	synth Synthesizer,
	normalizer Normalizer,
	probe DurationProbe,
	blobs BlobStore,
	voices map[string]string,
	logger *slog.Logger,
) *Renderer {
	merged := make(map[string]string, len(DefaultVoices)+len(voices))
	for lang, voice := range DefaultVoices {
		merged[lang] = voice
	}
	for lang, voice := range voices {
		merged[strings.ToLower(lang)] = voice
	}

	return &Renderer{
		synth:      synth,
		normalizer: normalizer,
		probe:      probe,
		blobs:      blobs,
		voices:     merged,
		logger:     logger.With("component", "narration"),
		newName: func() string {
			return uuid.NewString() + ".mp3"
		},
	}
}

// Render synthesizes, normalizes, measures and uploads one narration. The
// returned duration is measured from the uploaded audio.
func (r *Renderer) Render(ctx context.Context, text, languageCode string) (domain.Narration, error) {
	lang := strings.ToLower(languageCode)
	if _, ok := domain.LookupLanguage(lang); !ok {
		return domain.Narration{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, languageCode)
	}
	voice, ok := r.voices[lang]
	if !ok {
		return domain.Narration{}, fmt.Errorf("%w: no voice for %q", domain.ErrUnsupportedLanguage, languageCode)
	}

	audio, err := r.synth.Synthesize(ctx, text, voice)
	if err != nil {
		return domain.Narration{}, fmt.Errorf("synthesize narration: %w", err)
	}

	audio, err = r.normalizer.Normalize(ctx, audio)
	if err != nil {
		return domain.Narration{}, fmt.Errorf("normalize narration: %w", err)
	}

	duration, err := r.probe.Duration(audio)
	if err != nil {
		return domain.Narration{}, fmt.Errorf("measure narration: %w", err)
	}

	name := r.newName()
	url, err := r.blobs.Upload(ctx, name, audioContentType, audio)
	if err != nil {
		return domain.Narration{}, fmt.Errorf("upload narration %s: %w", name, err)
	}

	r.logger.Debug("narration rendered",
		"object", name,
		"language", lang,
		"duration", duration,
		"bytes", len(audio),
	)

	return domain.Narration{URL: url, Duration: duration}, nil
}
