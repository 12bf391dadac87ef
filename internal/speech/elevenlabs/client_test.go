package elevenlabs

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  *Client
}

func (s *ClientTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.client = New(Config{
		BaseURL:        s.server.URL + "/",
		APIKey:         "xi-key",
		ModelID:        "eleven_turbo_v2_5",
		OutputFormat:   "mp3_22050_32",
		Voice:          VoiceSettings{Stability: 0.5, SimilarityBoost: 0.7, Style: 0.1, UseSpeakerBoost: true},
		Timeout:        5 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	}, logger)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestSynthesize() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/v1/text-to-speech/voice-1", r.URL.Path)
		s.Equal("mp3_22050_32", r.URL.Query().Get("output_format"))
		s.Equal("xi-key", r.Header.Get("xi-api-key"))

		var req synthesizeRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("Welcome to the rewind.", req.Text)
		s.Equal("eleven_turbo_v2_5", req.ModelID)
		s.Equal(0.7, req.VoiceSettings.SimilarityBoost)

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3audio"))
	}

	audio, err := s.client.Synthesize(context.Background(), "Welcome to the rewind.", "voice-1")
	s.Require().NoError(err)
	s.Equal([]byte("ID3audio"), audio)
}

func (s *ClientTestSuite) TestSynthesize_RetriesServerErrors() {
	calls := 0
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte("audio"))
	}

	audio, err := s.client.Synthesize(context.Background(), "text", "voice-1")
	s.Require().NoError(err)
	s.Equal([]byte("audio"), audio)
	s.Equal(2, calls)
}

func (s *ClientTestSuite) TestSynthesize_ClientErrorIsPermanent() {
	calls := 0
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "invalid api key"}`))
	}

	_, err := s.client.Synthesize(context.Background(), "text", "voice-1")
	s.ErrorIs(err, ErrSynthesis)
	s.Contains(err.Error(), "invalid api key")
	s.Equal(1, calls)
}

func (s *ClientTestSuite) TestSynthesize_EmptyAudio() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	_, err := s.client.Synthesize(context.Background(), "text", "voice-1")
	s.ErrorIs(err, ErrSynthesis)
}
