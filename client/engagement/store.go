package engagement

import (
	"context"

	"video-gateway/domain/model"
)

// Store is the mutation surface the synchronizer reconciles against. An
// implementation backed by the gateway's HTTP API must translate a
// unique-violation response into model.ErrDuplicate so an add against an
// existing fact can confirm instead of rolling back.
type Store interface {
	Exists(ctx context.Context, targetID string, kind model.EngagementKind) (bool, error)
	Add(ctx context.Context, targetID string, kind model.EngagementKind) error
	Remove(ctx context.Context, targetID string, kind model.EngagementKind) error
}

// Invalidator marks a derived aggregate view (liked count, saved list)
// stale after a confirmed mutation. It never recomputes anything.
type Invalidator func(kind model.EngagementKind)
