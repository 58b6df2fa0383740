package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"video-gateway/domain/model"
	"video-gateway/infrastructure/logger"
)

// IViewCache caches derived engagement views (per-user id lists). Views are
// marked stale on mutation confirm and repopulated lazily on the next read;
// they are never recomputed eagerly.
type IViewCache interface {
	GetList(ctx context.Context, userID string, kind model.EngagementKind) ([]string, bool)
	SetList(ctx context.Context, userID string, kind model.EngagementKind, ids []string)
	Invalidate(ctx context.Context, userID string, kind model.EngagementKind)
}

const viewTTL = 10 * time.Minute

// ViewCache implements IViewCache on Redis. Nil-client safe: every call is a
// miss/no-op when Redis is unavailable, so the gateway degrades gracefully.
type ViewCache struct{ client *redis.Client }

func NewViewCache(client *redis.Client) *ViewCache {
	return &ViewCache{client: client}
}

func viewKey(userID string, kind model.EngagementKind) string {
	return fmt.Sprintf("engagement:%s:%s", kind, userID)
}

func (c *ViewCache) GetList(ctx context.Context, userID string, kind model.EngagementKind) ([]string, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, viewKey(userID, kind)).Bytes()
	if err != nil {
		return nil, false
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false
	}
	return ids, true
}

func (c *ViewCache) SetList(ctx context.Context, userID string, kind model.EngagementKind, ids []string) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, viewKey(userID, kind), raw, viewTTL).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed caching engagement view")
	}
}

func (c *ViewCache) Invalidate(ctx context.Context, userID string, kind model.EngagementKind) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, viewKey(userID, kind)).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed invalidating engagement view")
	}
}
