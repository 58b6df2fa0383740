package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-gateway/domain/repository"
	"video-gateway/infrastructure/logger"
)

// IProxyHandler defines the raw upstream pass-through handler
type IProxyHandler interface {
	Dispatch(ctx *gin.Context)
}

type ProxyHandler struct {
	youtube repository.IYouTube
}

func NewProxyHandler(youtube repository.IYouTube) IProxyHandler {
	return &ProxyHandler{youtube: youtube}
}

// Dispatch handles GET /api/youtube/:resource. Query parameters pass
// through untouched; credential selection stays server-side.
func (h *ProxyHandler) Dispatch(ctx *gin.Context) {
	resource := ctx.Param("resource")
	if resource == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "resource is required"})
		return
	}

	raw, err := h.youtube.Dispatch(ctx.Request.Context(), resource, ctx.Request.URL.Query())
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("resource", resource).Error("Upstream dispatch failed")
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", raw)
}
