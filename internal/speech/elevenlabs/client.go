package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rewind/internal/retry"
)

var ErrSynthesis = errors.New("speech synthesis failed")

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type Config struct {
	BaseURL        string
	APIKey         string
	ModelID        string
	OutputFormat   string
	Voice          VoiceSettings
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client is a text-to-speech client for the ElevenLabs REST API.
type Client struct {
	httpClient *http.Client
	cfg        Config
	retry      retry.Policy
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		retry: retry.Policy{
			MaxAttempts:    cfg.MaxAttempts,
			InitialBackoff: cfg.InitialBackoff,
			MaxBackoff:     cfg.MaxBackoff,
		},
		logger: logger.With("client", "elevenlabs"),
	}
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

// Synthesize renders text with the given voice and returns the encoded audio.
func (c *Client) Synthesize(ctx context.Context, text string, voiceID string) ([]byte, error) {
	body, err := json.Marshal(synthesizeRequest{
		Text:          text,
		ModelID:       c.cfg.ModelID,
		VoiceSettings: c.cfg.Voice,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	q := url.Values{}
	q.Set("output_format", c.cfg.OutputFormat)
	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s?%s", c.cfg.BaseURL, url.PathEscape(voiceID), q.Encode())

	var audio []byte
	err = retry.Do(ctx, c.retry, c.logger, "text-to-speech", func(ctx context.Context) error {
		audio, err = c.post(ctx, endpoint, body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return audio, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, retry.Permanent(err)
		}
		return nil, fmt.Errorf("%w: execute request: %w", ErrSynthesis, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("%w: unexpected status %d: %s", ErrSynthesis, resp.StatusCode, bytes.TrimSpace(detail))
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return nil, err
		}
		return nil, retry.Permanent(err)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read audio: %w", ErrSynthesis, err)
	}
	if len(audio) == 0 {
		return nil, retry.Permanent(fmt.Errorf("%w: empty audio", ErrSynthesis))
	}
	return audio, nil
}
