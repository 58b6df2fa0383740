package usecase

import (
	"context"
	"fmt"

	"video-gateway/domain/model"
	"video-gateway/domain/repository"
)

// IHistoryUseCase defines watch-history operations.
type IHistoryUseCase interface {
	Append(ctx context.Context, userID, videoID string) error
	// List returns the watched videos with full details, most recent first.
	List(ctx context.Context, userID string, limit int) ([]model.Video, error)
	Clear(ctx context.Context, userID string) error
}

type HistoryUseCase struct {
	repo    repository.IHistory
	youtube repository.IYouTube
}

func NewHistoryUseCase(repo repository.IHistory, youtube repository.IYouTube) IHistoryUseCase {
	return &HistoryUseCase{repo: repo, youtube: youtube}
}

func (u *HistoryUseCase) Append(ctx context.Context, userID, videoID string) error {
	if videoID == "" {
		return fmt.Errorf("video ID is required")
	}
	return u.repo.Append(ctx, userID, videoID)
}

func (u *HistoryUseCase) List(ctx context.Context, userID string, limit int) ([]model.Video, error) {
	entries, err := u.repo.List(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.VideoID)
	}
	videos, err := u.youtube.FetchDetails(ctx, ids)
	if err != nil {
		return nil, err
	}
	// Details come back in chunk order; restore the history's own ordering
	byID := make(map[string]model.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	out := make([]model.Video, 0, len(videos))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (u *HistoryUseCase) Clear(ctx context.Context, userID string) error {
	return u.repo.Clear(ctx, userID)
}
