package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"

	"video-gateway/domain/model"
)

// SearchCacheRepository implements repository.ISearchCache on PostgreSQL.
// Concurrent misses for the same query race on insert; the table's primary
// key decides the winner and the loser's insert maps to model.ErrDuplicate.
type SearchCacheRepository struct{ db *sql.DB }

func NewSearchCacheRepository(db *sql.DB) *SearchCacheRepository {
	return &SearchCacheRepository{db: db}
}

func (r *SearchCacheRepository) Get(ctx context.Context, query string) (*model.SearchCacheEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT results, created_at, last_accessed_at FROM search_cache WHERE query=$1`, query)
	var raw []byte
	entry := &model.SearchCacheEntry{Query: query}
	if err := row.Scan(&raw, &entry.CreatedAt, &entry.LastAccessedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &entry.Results); err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *SearchCacheRepository) Insert(ctx context.Context, entry *model.SearchCacheEntry) error {
	raw, err := json.Marshal(entry.Results)
	if err != nil {
		return err
	}
	// Plain INSERT, no upsert: the results payload is write-once
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO search_cache (query, results, created_at, last_accessed_at) VALUES ($1,$2,$3,$4)`,
		entry.Query, raw, entry.CreatedAt, entry.LastAccessedAt)
	if isUniqueViolation(err) {
		return model.ErrDuplicate
	}
	return err
}

func (r *SearchCacheRepository) Touch(ctx context.Context, query string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE search_cache SET last_accessed_at=$1 WHERE query=$2`, at, query)
	return err
}

// isUniqueViolation reports whether err is PostgreSQL's unique_violation.
func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
