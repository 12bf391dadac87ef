package audio

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/go-mp3"
)

// bytes per decoded sample frame: 16-bit stereo
const frameSize = 4

// MP3Probe measures the playing time of an MP3 clip from its frames.
type MP3Probe struct{}

func (MP3Probe) Duration(audio []byte) (float64, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(audio))
	if err != nil {
		return 0, fmt.Errorf("decode mp3: %w", err)
	}
	if dec.SampleRate() <= 0 {
		return 0, fmt.Errorf("decode mp3: invalid sample rate %d", dec.SampleRate())
	}

	samples := dec.Length() / frameSize
	return float64(samples) / float64(dec.SampleRate()), nil
}
