package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rewind/internal/domain"
)

type Handler struct {
	jobs   JobService
	db     Pinger
	logger *slog.Logger
}

func NewHandler(jobs JobService, db Pinger, logger *slog.Logger) *Handler {
	return &Handler{
		jobs:   jobs,
		db:     db,
		logger: logger.With("component", "api"),
	}
}

type CreateRewindRequest struct {
	EventID      string   `json:"event_id" binding:"required"`
	FocusPlayers []string `json:"focus_players"`
	FocusAreas   []string `json:"focus_areas"`
	FocusTeams   []string `json:"focus_teams"`
	Language     string   `json:"language" binding:"required"`
	MusicURL     string   `json:"music_url"`
}

// NewRouter wires the job API onto a fresh gin engine.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.logRequests)

	router.GET("/healthz", h.Health)
	router.GET("/languages", h.ListLanguages)

	rewinds := router.Group("/rewinds")
	{
		rewinds.POST("", h.CreateRewind)
		rewinds.GET("/:id", h.GetRewind)
	}

	return router
}

func (h *Handler) CreateRewind(c *gin.Context) {
	var req CreateRewindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobs.Submit(c.Request.Context(), domain.RewindRequest{
		EventID:            req.EventID,
		FocusPlayers:       req.FocusPlayers,
		FocusAreas:         req.FocusAreas,
		FocusTeams:         req.FocusTeams,
		LanguageCode:       req.Language,
		BackgroundMusicURL: req.MusicURL,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrUnsupportedLanguage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Error("submit rewind", "event_id", req.EventID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit rewind"})
		return
	}

	c.Header("Location", "/rewinds/"+job.ID)
	c.JSON(http.StatusAccepted, job)
}

func (h *Handler) GetRewind(c *gin.Context) {
	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "rewind not found"})
		return
	case err != nil:
		h.logger.Error("get rewind", "job_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rewind"})
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *Handler) ListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Languages())
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *Handler) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()

	h.logger.Debug("request handled",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}
