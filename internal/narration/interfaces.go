package narration

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, text string, voiceID string) ([]byte, error)
}

// Normalizer adjusts the loudness of an encoded clip.
type Normalizer interface {
	Normalize(ctx context.Context, audio []byte) ([]byte, error)
}

type DurationProbe interface {
	Duration(audio []byte) (float64, error)
}

type BlobStore interface {
	Upload(ctx context.Context, name string, contentType string, data []byte) (string, error)
}
