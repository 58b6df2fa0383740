package repository

import (
	"context"

	"video-gateway/domain/model"
)

// IEngagement is the authoritative store for per-user engagement facts with
// unique-constraint semantics: one record per (user, target, kind).
type IEngagement interface {
	// Add inserts a fact. Returns model.ErrDuplicate when it already
	// exists; callers treat that as idempotent success.
	Add(ctx context.Context, userID, targetID string, kind model.EngagementKind) error
	// Remove deletes a fact. Removing an absent fact is not an error.
	Remove(ctx context.Context, userID, targetID string, kind model.EngagementKind) error
	// Exists is a membership check. Zero rows means false, never an error.
	Exists(ctx context.Context, userID, targetID string, kind model.EngagementKind) (bool, error)
	// List returns the user's target ids for a kind, most recent first.
	List(ctx context.Context, userID string, kind model.EngagementKind) ([]string, error)
}

// IHistory stores a user's watch history.
type IHistory interface {
	// Append records a watch; re-watching bumps the timestamp in place.
	Append(ctx context.Context, userID, videoID string) error
	List(ctx context.Context, userID string, limit int) ([]model.WatchHistoryEntry, error)
	Clear(ctx context.Context, userID string) error
}
