package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"video-gateway/domain/dto"
	"video-gateway/infrastructure/logger"
	"video-gateway/usecase"
)

// IHistoryHandler defines the watch-history HTTP handlers
type IHistoryHandler interface {
	List(ctx *gin.Context)
	Append(ctx *gin.Context)
	Clear(ctx *gin.Context)
}

type HistoryHandler struct {
	historyUseCase usecase.IHistoryUseCase
}

func NewHistoryHandler(historyUseCase usecase.IHistoryUseCase) IHistoryHandler {
	return &HistoryHandler{historyUseCase: historyUseCase}
}

// List handles GET /api/history
func (h *HistoryHandler) List(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil {
			limit = val
		}
	}

	videos, err := h.historyUseCase.List(ctx.Request.Context(), userID, limit)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed listing watch history")
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": videos})
}

// Append handles POST /api/history
func (h *HistoryHandler) Append(ctx *gin.Context) {
	var req dto.HistoryAppendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "videoId is required"})
		return
	}

	userID := ctx.GetString("user_id")
	if err := h.historyUseCase.Append(ctx.Request.Context(), userID, req.VideoID); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed appending watch history")
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Clear handles DELETE /api/history
func (h *HistoryHandler) Clear(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	if err := h.historyUseCase.Clear(ctx.Request.Context(), userID); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed clearing watch history")
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
