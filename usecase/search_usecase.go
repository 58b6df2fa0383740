package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"video-gateway/domain/model"
	"video-gateway/domain/repository"
	"video-gateway/infrastructure/logger"
)

// ISearchUseCase defines the cached keyword search operations
type ISearchUseCase interface {
	// Search resolves a raw query through the persistent query cache.
	Search(ctx context.Context, rawQuery string) ([]model.Video, error)
	// Trending returns the most-popular chart for an already-resolved region.
	Trending(ctx context.Context, region string) ([]model.Video, error)
}

// SearchUseCase implements the cache-aside read path: hit returns the stored
// results untouched (no re-validation, no TTL), miss does the two-phase
// upstream fetch and writes back best-effort.
type SearchUseCase struct {
	youtube repository.IYouTube
	cache   repository.ISearchCache
}

func NewSearchUseCase(youtube repository.IYouTube, cache repository.ISearchCache) ISearchUseCase {
	return &SearchUseCase{youtube: youtube, cache: cache}
}

// NormalizeQuery derives the cache key: queries differing only by case or
// surrounding whitespace share one entry.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func (u *SearchUseCase) Search(ctx context.Context, rawQuery string) ([]model.Video, error) {
	query := NormalizeQuery(rawQuery)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}

	entry, err := u.cache.Get(ctx, query)
	if err != nil {
		// A broken cache read degrades to a miss; it must not fail the search
		logger.GetLogger().WithField("error", err).Warn("search cache read failed, treating as miss")
	}
	if entry != nil {
		// Refresh access time out-of-band; the response never waits on it
		go func() {
			touchCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := u.cache.Touch(touchCtx, query, time.Now().UTC()); err != nil {
				logger.GetLogger().WithField("error", err).Warn("failed touching search cache entry")
			}
		}()
		return entry.Results, nil
	}

	// Two-phase miss path: candidate ids, then chunked detail resolution
	ids, err := u.youtube.SearchVideoIDs(ctx, query, 25)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		// An empty result may be a transient upstream hiccup; never cache it
		return []model.Video{}, nil
	}
	videos, err := u.youtube.FetchDetails(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return []model.Video{}, nil
	}

	now := time.Now().UTC()
	insertErr := u.cache.Insert(ctx, &model.SearchCacheEntry{
		Query:          query,
		Results:        videos,
		CreatedAt:      now,
		LastAccessedAt: now,
	})
	switch {
	case insertErr == nil:
	case insertErr == model.ErrDuplicate:
		// Lost a concurrent-miss race; the winner's entry is equally valid
	default:
		logger.GetLogger().WithField("error", insertErr).Warn("failed writing search cache entry")
	}
	return videos, nil
}

func (u *SearchUseCase) Trending(ctx context.Context, region string) ([]model.Video, error) {
	return u.youtube.MostPopular(ctx, region, 25)
}
