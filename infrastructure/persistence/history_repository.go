package persistence

import (
	"context"
	"database/sql"
	"time"

	"video-gateway/domain/model"
)

// HistoryRepository implements repository.IHistory on PostgreSQL.
type HistoryRepository struct{ db *sql.DB }

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append records a watch. A re-watch bumps watched_at in place rather than
// adding a duplicate row.
func (r *HistoryRepository) Append(ctx context.Context, userID, videoID string) error {
	q := `INSERT INTO watch_history (user_id, video_id, watched_at)
          VALUES ($1,$2,$3)
          ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at=EXCLUDED.watched_at`
	_, err := r.db.ExecContext(ctx, q, userID, videoID, time.Now().UTC())
	return err
}

func (r *HistoryRepository) List(ctx context.Context, userID string, limit int) ([]model.WatchHistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT video_id, watched_at FROM watch_history WHERE user_id=$1 ORDER BY watched_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.WatchHistoryEntry, 0, limit)
	for rows.Next() {
		e := model.WatchHistoryEntry{UserID: userID}
		if err := rows.Scan(&e.VideoID, &e.WatchedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *HistoryRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM watch_history WHERE user_id=$1`, userID)
	return err
}
