package repository

import (
	"context"
	"time"

	"video-gateway/domain/model"
)

// ISearchCache is the persistent query cache keyed by normalized query text.
type ISearchCache interface {
	// Get returns the entry for a normalized query, or (nil, nil) on miss.
	Get(ctx context.Context, query string) (*model.SearchCacheEntry, error)
	// Insert stores a new entry. Returns model.ErrDuplicate when another
	// writer won the race; the results payload of an entry is write-once.
	Insert(ctx context.Context, entry *model.SearchCacheEntry) error
	// Touch updates last_accessed_at. Best effort; failure is non-fatal.
	Touch(ctx context.Context, query string, at time.Time) error
}
