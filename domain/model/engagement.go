package model

import "time"

// EngagementKind enumerates the togglable per-user engagement facts.
type EngagementKind string

const (
	KindLike       EngagementKind = "like"
	KindSave       EngagementKind = "save"
	KindWatchLater EngagementKind = "watchLater"
	KindSubscribe  EngagementKind = "subscribe"
)

// TargetIsChannel reports whether the kind's target id is a channel rather
// than a video.
func (k EngagementKind) TargetIsChannel() bool { return k == KindSubscribe }

// EngagementRecord is one authoritative engagement fact. Uniqueness is one
// record per (user, target, kind); target is a channel id for subscriptions
// and a video id otherwise.
type EngagementRecord struct {
	UserID    string         `json:"user_id"`
	TargetID  string         `json:"target_id"`
	Kind      EngagementKind `json:"kind"`
	CreatedAt time.Time      `json:"created_at"`
}

// WatchHistoryEntry is one row of a user's watch history. A re-watch bumps
// WatchedAt rather than appending a duplicate row.
type WatchHistoryEntry struct {
	UserID    string    `json:"user_id"`
	VideoID   string    `json:"video_id"`
	WatchedAt time.Time `json:"watched_at"`
}
