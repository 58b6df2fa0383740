package usecase

import (
	"context"
	"fmt"

	"video-gateway/domain/model"
	"video-gateway/domain/repository"
	"video-gateway/infrastructure/cache"
)

const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// IEngagementUseCase defines the authoritative-store side of engagement
// facts: membership checks, mutations, and cached list views.
type IEngagementUseCase interface {
	Status(ctx context.Context, userID, targetID string, kind model.EngagementKind) (bool, error)
	Apply(ctx context.Context, userID, targetID string, kind model.EngagementKind, action string) error
	List(ctx context.Context, userID string, kind model.EngagementKind) ([]string, error)
}

type EngagementUseCase struct {
	repo  repository.IEngagement
	views cache.IViewCache
}

func NewEngagementUseCase(repo repository.IEngagement, views cache.IViewCache) IEngagementUseCase {
	return &EngagementUseCase{repo: repo, views: views}
}

func (u *EngagementUseCase) Status(ctx context.Context, userID, targetID string, kind model.EngagementKind) (bool, error) {
	if targetID == "" {
		return false, fmt.Errorf("target ID is required")
	}
	return u.repo.Exists(ctx, userID, targetID, kind)
}

// Apply runs one mutation. A duplicate add resolves as success so the
// caller's optimistic flip confirms instead of rolling back; either outcome
// marks the derived list view stale.
func (u *EngagementUseCase) Apply(ctx context.Context, userID, targetID string, kind model.EngagementKind, action string) error {
	if targetID == "" {
		return fmt.Errorf("target ID is required")
	}
	switch action {
	case ActionAdd:
		if err := u.repo.Add(ctx, userID, targetID, kind); err != nil && err != model.ErrDuplicate {
			return err
		}
	case ActionRemove:
		if err := u.repo.Remove(ctx, userID, targetID, kind); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
	if u.views != nil {
		u.views.Invalidate(ctx, userID, kind)
	}
	return nil
}

// List serves the derived view cache-aside: stale-marked views repopulate
// here on the next read, never eagerly.
func (u *EngagementUseCase) List(ctx context.Context, userID string, kind model.EngagementKind) ([]string, error) {
	if u.views != nil {
		if ids, ok := u.views.GetList(ctx, userID, kind); ok {
			return ids, nil
		}
	}
	ids, err := u.repo.List(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	if u.views != nil {
		u.views.SetList(ctx, userID, kind, ids)
	}
	return ids, nil
}
