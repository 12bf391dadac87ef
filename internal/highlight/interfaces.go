package highlight

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
)

type VideoFetcher interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// VideoStore keeps mirrored clips in private storage and returns a reference
// the video model can read.
type VideoStore interface {
	Upload(ctx context.Context, name string, contentType string, data []byte) (string, error)
}

// VideoMemo remembers which source URLs are already mirrored.
type VideoMemo interface {
	Get(ctx context.Context, sourceURL string) (string, bool, error)
	Put(ctx context.Context, sourceURL string, ref string) error
}

type VideoModel interface {
	SelectRange(ctx context.Context, videoRef string, prompt string) (string, error)
}
