package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
)

var (
	ErrNormalize = errors.New("audio normalization failed")

	maxVolumeRe = regexp.MustCompile(`max_volume:\s*(-?[0-9.]+|-inf) dB`)
)

// PeakNormalizer raises or lowers a clip so its peak sits at a fixed level.
// It shells out to ffmpeg: one pass to measure, one to apply the gain.
type PeakNormalizer struct {
	ffmpegPath string
	targetPeak float64
}

func NewPeakNormalizer(ffmpegPath string, targetPeakDBFS float64) *PeakNormalizer {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &PeakNormalizer{ffmpegPath: ffmpegPath, targetPeak: targetPeakDBFS}
}

func (n *PeakNormalizer) Normalize(ctx context.Context, audio []byte) ([]byte, error) {
	stderr, err := n.run(ctx, audio, nil,
		"-hide_banner", "-nostats", "-i", "pipe:0", "-af", "volumedetect", "-f", "null", "-")
	if err != nil {
		return nil, fmt.Errorf("%w: detect volume: %w", ErrNormalize, err)
	}

	peak, err := parseMaxVolume(stderr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNormalize, err)
	}
	// silence has no peak to move
	if peak == nil {
		return audio, nil
	}

	gain := n.targetPeak - *peak
	var out bytes.Buffer
	if _, err := n.run(ctx, audio, &out,
		"-hide_banner", "-nostats", "-i", "pipe:0",
		"-af", "volume="+strconv.FormatFloat(gain, 'f', 2, 64)+"dB",
		"-f", "mp3", "pipe:1"); err != nil {
		return nil, fmt.Errorf("%w: apply gain: %w", ErrNormalize, err)
	}
	return out.Bytes(), nil
}

func (n *PeakNormalizer) run(ctx context.Context, input []byte, stdout *bytes.Buffer, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, n.ffmpegPath, args...)
	cmd.Stdin = bytes.NewReader(input)
	if stdout != nil {
		cmd.Stdout = stdout
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.Bytes()))
	}
	return stderr.String(), nil
}

// parseMaxVolume reads the volumedetect report. A nil result means silence.
func parseMaxVolume(report string) (*float64, error) {
	m := maxVolumeRe.FindStringSubmatch(report)
	if m == nil {
		return nil, errors.New("no max_volume in ffmpeg output")
	}
	if m[1] == "-inf" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, fmt.Errorf("parse max_volume %q: %w", m[1], err)
	}
	return &v, nil
}

func lastLine(b []byte) string {
	lines := bytes.Split(bytes.TrimSpace(b), []byte("\n"))
	return string(lines[len(lines)-1])
}
