package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"video-gateway/domain/model"
)

type engagementTable struct {
	name      string
	targetCol string
}

var engagementTables = map[model.EngagementKind]engagementTable{
	model.KindLike:       {name: "liked_videos", targetCol: "video_id"},
	model.KindWatchLater: {name: "watch_later", targetCol: "video_id"},
	model.KindSave:       {name: "saved_videos", targetCol: "video_id"},
	model.KindSubscribe:  {name: "subscriptions", targetCol: "channel_id"},
}

// EngagementRepository implements repository.IEngagement on PostgreSQL, one
// table per kind with a composite primary key supplying the uniqueness
// guarantee.
type EngagementRepository struct{ db *sql.DB }

func NewEngagementRepository(db *sql.DB) *EngagementRepository {
	return &EngagementRepository{db: db}
}

func (r *EngagementRepository) Add(ctx context.Context, userID, targetID string, kind model.EngagementKind) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	q := fmt.Sprintf(`INSERT INTO %s (user_id, %s, created_at) VALUES ($1,$2,$3)`, t.name, t.targetCol)
	_, err = r.db.ExecContext(ctx, q, userID, targetID, time.Now().UTC())
	if isUniqueViolation(err) {
		return model.ErrDuplicate
	}
	return err
}

func (r *EngagementRepository) Remove(ctx context.Context, userID, targetID string, kind model.EngagementKind) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	// Removing an absent fact is a no-op, not an error
	q := fmt.Sprintf(`DELETE FROM %s WHERE user_id=$1 AND %s=$2`, t.name, t.targetCol)
	_, err = r.db.ExecContext(ctx, q, userID, targetID)
	return err
}

func (r *EngagementRepository) Exists(ctx context.Context, userID, targetID string, kind model.EngagementKind) (bool, error) {
	t, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	q := fmt.Sprintf(`SELECT 1 FROM %s WHERE user_id=$1 AND %s=$2`, t.name, t.targetCol)
	var one int
	if err := r.db.QueryRowContext(ctx, q, userID, targetID).Scan(&one); err != nil {
		// Absence is not an error: zero rows simply means the fact does
		// not hold for this user.
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *EngagementRepository) List(ctx context.Context, userID string, kind model.EngagementKind) ([]string, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id=$1 ORDER BY created_at DESC`, t.targetCol, t.name)
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func tableFor(kind model.EngagementKind) (engagementTable, error) {
	t, ok := engagementTables[kind]
	if !ok {
		return engagementTable{}, fmt.Errorf("unknown engagement kind: %s", kind)
	}
	return t, nil
}
