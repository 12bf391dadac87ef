package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUpstreamData        = errors.New("upstream data error")
	ErrMalformedScript     = errors.New("malformed script")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidComponent    = errors.New("invalid ui component")
	ErrNotFound            = errors.New("not found")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrNoPlaybackURL       = errors.New("no playback url")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrTimeout             = errors.New("timeout")
	ErrInvalidRequest      = errors.New("invalid request")
)

// TimeoutError reports the pipeline stage whose deadline expired.
type TimeoutError struct {
	Stage Stage
	Err   error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: stage %s: %v", ErrTimeout, e.Stage, e.Err)
}

func (e *TimeoutError) Unwrap() []error {
	return []error{ErrTimeout, e.Err}
}

// IsComponentError reports whether err should degrade a single section
// instead of failing the whole rewind.
func IsComponentError(err error) bool {
	return errors.Is(err, ErrInvalidComponent) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrIndexOutOfRange) ||
		errors.Is(err, ErrNoPlaybackURL) ||
		errors.Is(err, ErrUpstreamData)
}

// UserMessage maps a fatal pipeline error to the text shown to callers.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "the rewind took too long to produce"
	case errors.Is(err, ErrInvalidRequest):
		return "the request is invalid"
	case errors.Is(err, ErrUnsupportedLanguage):
		return "the requested language is not supported"
	case errors.Is(err, ErrUpstreamData):
		return "game data is currently unavailable"
	case errors.Is(err, ErrMalformedScript):
		return "the commentary could not be generated"
	default:
		return "the rewind could not be produced"
	}
}
