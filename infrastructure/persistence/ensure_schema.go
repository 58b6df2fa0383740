package persistence

import (
	"database/sql"
	"fmt"

	"video-gateway/infrastructure/logger"
)

// EnsureSearchCacheSchema creates the persistent query cache table. The
// results payload is write-once per query; only last_accessed_at mutates.
func EnsureSearchCacheSchema(db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS search_cache (
        query TEXT PRIMARY KEY,
        results JSONB NOT NULL,
        created_at TIMESTAMPTZ NOT NULL,
        last_accessed_at TIMESTAMPTZ NOT NULL
    )`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create search_cache table: %w", err)
	}

	// Helps external housekeeping find cold entries; this service never evicts
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_search_cache_last_accessed_at ON search_cache(last_accessed_at)`); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed creating idx_search_cache_last_accessed_at")
	}
	return nil
}

// EnsureEngagementSchema creates the per-user engagement fact tables. The
// composite primary keys carry the one-record-per-fact uniqueness guarantee
// the synchronizer relies on.
func EnsureEngagementSchema(db *sql.DB) error {
	ddls := []string{
		`CREATE TABLE IF NOT EXISTS liked_videos (
            user_id TEXT NOT NULL,
            video_id TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            PRIMARY KEY (user_id, video_id)
        )`,
		`CREATE TABLE IF NOT EXISTS watch_later (
            user_id TEXT NOT NULL,
            video_id TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            PRIMARY KEY (user_id, video_id)
        )`,
		`CREATE TABLE IF NOT EXISTS saved_videos (
            user_id TEXT NOT NULL,
            video_id TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            PRIMARY KEY (user_id, video_id)
        )`,
		`CREATE TABLE IF NOT EXISTS subscriptions (
            user_id TEXT NOT NULL,
            channel_id TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            PRIMARY KEY (user_id, channel_id)
        )`,
		`CREATE TABLE IF NOT EXISTS watch_history (
            user_id TEXT NOT NULL,
            video_id TEXT NOT NULL,
            watched_at TIMESTAMPTZ NOT NULL,
            PRIMARY KEY (user_id, video_id)
        )`,
	}
	for _, ddl := range ddls {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("ensure engagement schema: %w", err)
		}
	}
	return nil
}
