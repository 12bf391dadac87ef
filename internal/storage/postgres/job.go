package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"rewind/internal/domain"
)

type JobStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewJobStore(db *sqlx.DB) *JobStore {
	return &JobStore{db: db, now: time.Now}
}

type jobRow struct {
	ID           string         `db:"id"`
	EventID      string         `db:"event_id"`
	FocusPlayers pq.StringArray `db:"focus_players"`
	FocusAreas   pq.StringArray `db:"focus_areas"`
	FocusTeams   pq.StringArray `db:"focus_teams"`
	Language     string         `db:"language"`
	MusicURL     string         `db:"music_url"`
	Fingerprint  string         `db:"fingerprint"`
	Status       string         `db:"status"`
	Stage        string         `db:"stage"`
	Section      int            `db:"section"`
	Error        string         `db:"error"`
	Timeline     []byte         `db:"timeline"`
	Attempts     int            `db:"attempts"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

const jobColumns = `id, event_id, focus_players, focus_areas, focus_teams, language, music_url,
	fingerprint, status, stage, section, error, timeline, attempts, created_at, updated_at`

func (r *jobRow) toDomain() (*domain.Job, error) {
	job := &domain.Job{
		ID: r.ID,
		Request: domain.RewindRequest{
			EventID:            r.EventID,
			FocusPlayers:       []string(r.FocusPlayers),
			FocusAreas:         []string(r.FocusAreas),
			FocusTeams:         []string(r.FocusTeams),
			LanguageCode:       r.Language,
			BackgroundMusicURL: r.MusicURL,
		},
		Fingerprint: r.Fingerprint,
		Status:      domain.JobStatus(r.Status),
		Stage:       domain.Stage(r.Stage),
		Section:     r.Section,
		Error:       r.Error,
		Attempts:    r.Attempts,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if len(r.Timeline) > 0 {
		var t domain.Timeline
		if err := json.Unmarshal(r.Timeline, &t); err != nil {
			return nil, fmt.Errorf("decode timeline of job %s: %w", r.ID, err)
		}
		job.Timeline = &t
	}
	return job, nil
}

func (s *JobStore) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO rewind_jobs (
			id, event_id, focus_players, focus_areas, focus_teams, language, music_url,
			fingerprint, status, stage, section, error, attempts, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)`

	now := s.now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		job.ID,
		job.Request.EventID,
		pq.Array(nonNil(job.Request.FocusPlayers)),
		pq.Array(nonNil(job.Request.FocusAreas)),
		pq.Array(nonNil(job.Request.FocusTeams)),
		job.Request.LanguageCode,
		job.Request.BackgroundMusicURL,
		job.Fingerprint,
		job.Status,
		job.Stage,
		job.Section,
		job.Error,
		job.Attempts,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job %s: %w", job.ID, err)
	}
	return nil
}

func (s *JobStore) Get(ctx context.Context, id string) (*domain.Job, error) {
	var row jobRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row,
		`SELECT `+jobColumns+` FROM rewind_jobs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: job %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("select job %s: %w", id, err)
	}
	return row.toDomain()
}

// MarkRunning claims a queued job for a worker and counts the attempt.
// Jobs that already finished are returned unchanged with claimed=false.
func (s *JobStore) MarkRunning(ctx context.Context, id string) (*domain.Job, bool, error) {
	query := `
		UPDATE rewind_jobs
		SET status = $2, stage = $3, section = 0, error = '', attempts = attempts + 1, updated_at = $4
		WHERE id = $1 AND status NOT IN ($5, $6)
		RETURNING ` + jobColumns

	var row jobRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query,
		id, domain.JobRunning, domain.StageBuildingFeed, s.now().UTC(), domain.JobCompleted, domain.JobFailed)
	if errors.Is(err, sql.ErrNoRows) {
		job, err := s.Get(ctx, id)
		if err != nil {
			return nil, false, err
		}
		return job, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mark job %s running: %w", id, err)
	}

	job, err := row.toDomain()
	if err != nil {
		return nil, false, err
	}
	return job, true, nil
}

func (s *JobStore) UpdateProgress(ctx context.Context, id string, stage domain.Stage, section int) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE rewind_jobs SET stage = $2, section = $3, updated_at = $4 WHERE id = $1`,
		id, stage, section, s.now().UTC())
	if err != nil {
		return fmt.Errorf("update job %s progress: %w", id, err)
	}
	return nil
}

func (s *JobStore) Complete(ctx context.Context, id string, timeline *domain.Timeline) error {
	body, err := json.Marshal(timeline)
	if err != nil {
		return fmt.Errorf("encode timeline of job %s: %w", id, err)
	}

	_, err = GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE rewind_jobs SET status = $2, stage = $3, error = '', timeline = $4, updated_at = $5 WHERE id = $1`,
		id, domain.JobCompleted, domain.StageReturned, body, s.now().UTC())
	if err != nil {
		return fmt.Errorf("complete job %s: %w", id, err)
	}
	return nil
}

func (s *JobStore) Fail(ctx context.Context, id string, message string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE rewind_jobs SET status = $2, error = $3, updated_at = $4 WHERE id = $1`,
		id, domain.JobFailed, message, s.now().UTC())
	if err != nil {
		return fmt.Errorf("fail job %s: %w", id, err)
	}
	return nil
}

// ListStale returns queued or running jobs not updated since before. Inside
// a transaction the rows stay locked until it ends.
func (s *JobStore) ListStale(ctx context.Context, before time.Time, limit int) ([]string, error) {
	query := `
		SELECT id FROM rewind_jobs
		WHERE status = ANY($1) AND updated_at < $2
		ORDER BY updated_at
		LIMIT $3
		FOR UPDATE SKIP LOCKED`

	var ids []string
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids, query,
		pq.Array([]string{string(domain.JobQueued), string(domain.JobRunning)}), before, limit); err != nil {
		return nil, fmt.Errorf("select stale jobs: %w", err)
	}
	return ids, nil
}

func (s *JobStore) Requeue(ctx context.Context, id string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE rewind_jobs SET status = $2, stage = $3, section = 0, updated_at = $4 WHERE id = $1`,
		id, domain.JobQueued, domain.StageQueued, s.now().UTC())
	if err != nil {
		return fmt.Errorf("requeue job %s: %w", id, err)
	}
	return nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
