package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// VideoMemoStore maps highlight source URLs to their private mirror.
type VideoMemoStore struct {
	db *sqlx.DB
}

func NewVideoMemoStore(db *sqlx.DB) *VideoMemoStore {
	return &VideoMemoStore{db: db}
}

func (s *VideoMemoStore) Get(ctx context.Context, sourceURL string) (string, bool, error) {
	var ref string
	err := s.db.GetContext(ctx, &ref, `SELECT mirror_ref FROM video_memo WHERE source_url = $1`, sourceURL)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select video memo: %w", err)
	}
	return ref, true, nil
}

func (s *VideoMemoStore) Put(ctx context.Context, sourceURL string, ref string) error {
	query := `
		INSERT INTO video_memo (source_url, mirror_ref)
		VALUES ($1, $2)
		ON CONFLICT (source_url) DO UPDATE SET
			mirror_ref = EXCLUDED.mirror_ref`

	if _, err := s.db.ExecContext(ctx, query, sourceURL, ref); err != nil {
		return fmt.Errorf("upsert video memo: %w", err)
	}
	return nil
}
