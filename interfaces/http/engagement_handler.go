package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-gateway/domain/dto"
	"video-gateway/domain/model"
	"video-gateway/infrastructure/logger"
	"video-gateway/usecase"
)

// IEngagementHandler defines the interface for engagement HTTP handlers
type IEngagementHandler interface {
	Likes(ctx *gin.Context)
	LikesAction(ctx *gin.Context)
	WatchLater(ctx *gin.Context)
	WatchLaterAction(ctx *gin.Context)
	SavedVideos(ctx *gin.Context)
	SavedVideosAction(ctx *gin.Context)
	Subscriptions(ctx *gin.Context)
	SubscriptionsAction(ctx *gin.Context)
}

type EngagementHandler struct {
	engagementUseCase usecase.IEngagementUseCase
}

func NewEngagementHandler(engagementUseCase usecase.IEngagementUseCase) IEngagementHandler {
	return &EngagementHandler{engagementUseCase: engagementUseCase}
}

// statusField names the boolean each status endpoint answers with.
var statusField = map[model.EngagementKind]string{
	model.KindLike:       "isLiked",
	model.KindWatchLater: "isInWatchLater",
	model.KindSave:       "isInSavedVideos",
	model.KindSubscribe:  "isSubscribed",
}

// Likes handles GET /api/likes. With videoId it answers the membership
// question; without, it returns the caller's full liked list.
func (h *EngagementHandler) Likes(ctx *gin.Context) {
	h.status(ctx, model.KindLike)
}

// LikesAction handles POST /api/likes
func (h *EngagementHandler) LikesAction(ctx *gin.Context) {
	h.action(ctx, model.KindLike)
}

// WatchLater handles GET /api/watch-later
func (h *EngagementHandler) WatchLater(ctx *gin.Context) {
	h.status(ctx, model.KindWatchLater)
}

// WatchLaterAction handles POST /api/watch-later
func (h *EngagementHandler) WatchLaterAction(ctx *gin.Context) {
	h.action(ctx, model.KindWatchLater)
}

// SavedVideos handles GET /api/saved-videos
func (h *EngagementHandler) SavedVideos(ctx *gin.Context) {
	h.status(ctx, model.KindSave)
}

// SavedVideosAction handles POST /api/saved-videos
func (h *EngagementHandler) SavedVideosAction(ctx *gin.Context) {
	h.action(ctx, model.KindSave)
}

// Subscriptions handles GET /api/subscriptions
func (h *EngagementHandler) Subscriptions(ctx *gin.Context) {
	h.status(ctx, model.KindSubscribe)
}

// SubscriptionsAction handles POST /api/subscriptions
func (h *EngagementHandler) SubscriptionsAction(ctx *gin.Context) {
	h.action(ctx, model.KindSubscribe)
}

func targetQueryParam(kind model.EngagementKind) string {
	if kind.TargetIsChannel() {
		return "channelId"
	}
	return "videoId"
}

func (h *EngagementHandler) status(ctx *gin.Context, kind model.EngagementKind) {
	userID := ctx.GetString("user_id")
	targetID := ctx.Query(targetQueryParam(kind))

	if targetID == "" {
		ids, err := h.engagementUseCase.List(ctx.Request.Context(), userID, kind)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Failed listing engagement records")
			writeError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"success": true, "data": ids})
		return
	}

	value, err := h.engagementUseCase.Status(ctx.Request.Context(), userID, targetID, kind)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed checking engagement status")
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{statusField[kind]: value})
}

func (h *EngagementHandler) action(ctx *gin.Context, kind model.EngagementKind) {
	var req dto.EngagementActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "action is required"})
		return
	}
	targetID := req.VideoID
	if kind.TargetIsChannel() {
		targetID = req.ChannelID
	}
	if targetID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": targetQueryParam(kind) + " is required"})
		return
	}
	if req.Action != usecase.ActionAdd && req.Action != usecase.ActionRemove {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "action must be add or remove"})
		return
	}

	userID := ctx.GetString("user_id")
	if err := h.engagementUseCase.Apply(ctx.Request.Context(), userID, targetID, kind, req.Action); err != nil {
		logger.GetLogger().WithField("error", err).WithField("kind", string(kind)).Error("Engagement mutation failed")
		writeError(ctx, err)
		return
	}

	// Subscriptions answer with a message; the video toggles with {success}
	if kind == model.KindSubscribe {
		message := "subscribed"
		if req.Action == usecase.ActionRemove {
			message = "unsubscribed"
		}
		ctx.JSON(http.StatusOK, gin.H{"message": message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
