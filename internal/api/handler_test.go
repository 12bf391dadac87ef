package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"rewind/internal/api/mocks"
	"rewind/internal/domain"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	jobs *mocks.MockJobService
	db   *mocks.MockPinger

	router *gin.Engine
}

func (s *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.jobs = mocks.NewMockJobService(s.ctrl)
	s.db = mocks.NewMockPinger(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.router = NewRouter(NewHandler(s.jobs, s.db, logger))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) TestCreateRewind() {
	s.jobs.EXPECT().Submit(gomock.Any(), domain.RewindRequest{
		EventID:            "634594",
		FocusPlayers:       []string{"Shohei Ohtani"},
		LanguageCode:       "en",
		BackgroundMusicURL: "https://cdn.example.com/music.mp3",
	}).Return(&domain.Job{ID: "job-1", Status: domain.JobQueued, Stage: domain.StageQueued}, nil)

	w := s.do(http.MethodPost, "/rewinds", `{
		"event_id": "634594",
		"focus_players": ["Shohei Ohtani"],
		"language": "en",
		"music_url": "https://cdn.example.com/music.mp3"
	}`)

	s.Equal(http.StatusAccepted, w.Code)
	s.Equal("/rewinds/job-1", w.Header().Get("Location"))

	var job domain.Job
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &job))
	s.Equal("job-1", job.ID)
	s.Equal(domain.JobQueued, job.Status)
}

func (s *HandlerTestSuite) TestCreateRewind_MissingFields() {
	w := s.do(http.MethodPost, "/rewinds", `{"focus_players": []}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestCreateRewind_MalformedBody() {
	w := s.do(http.MethodPost, "/rewinds", `{"event_id": `)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestCreateRewind_UnsupportedLanguage() {
	s.jobs.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, "xx"))

	w := s.do(http.MethodPost, "/rewinds", `{"event_id": "634594", "language": "xx"}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "unsupported language")
}

func (s *HandlerTestSuite) TestCreateRewind_SubmitFailure() {
	s.jobs.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, errors.New("publish job: channel closed"))

	w := s.do(http.MethodPost, "/rewinds", `{"event_id": "634594", "language": "en"}`)
	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "channel closed")
}

func (s *HandlerTestSuite) TestGetRewind() {
	s.jobs.EXPECT().Get(gomock.Any(), "job-1").Return(&domain.Job{
		ID:     "job-1",
		Status: domain.JobCompleted,
		Stage:  domain.StageReturned,
		Timeline: &domain.Timeline{
			EventID:       "634594",
			TotalDuration: 12.3,
			Sections:      []domain.ResolvedSection{{SectionID: 0, SectionDuration: 12.3}},
		},
	}, nil)

	w := s.do(http.MethodGet, "/rewinds/job-1", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("completed", body["status"])
	timeline := body["timeline"].(map[string]any)
	s.Equal("634594", timeline["id"])
	s.Equal(12.3, timeline["total_duration"])
	s.Len(timeline["video"], 1)
}

func (s *HandlerTestSuite) TestGetRewind_NotFound() {
	s.jobs.EXPECT().Get(gomock.Any(), "missing").Return(nil, fmt.Errorf("%w: job missing", domain.ErrNotFound))

	w := s.do(http.MethodGet, "/rewinds/missing", "")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestListLanguages() {
	w := s.do(http.MethodGet, "/languages", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var languages []domain.Language
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &languages))
	s.Equal(domain.Languages(), languages)
}

func (s *HandlerTestSuite) TestHealth() {
	s.db.EXPECT().PingContext(gomock.Any()).Return(nil)
	w := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, w.Code)

	s.db.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))
	w = s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusServiceUnavailable, w.Code)
}
