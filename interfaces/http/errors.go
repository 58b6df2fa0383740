package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"video-gateway/domain/model"
)

// writeError maps domain errors onto the stable {"error": message} shape.
// Internal details never reach the client body.
func writeError(ctx *gin.Context, err error) {
	var upstreamErr *model.UpstreamError
	switch {
	case errors.Is(err, model.ErrQuotaExhausted):
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "upstream quota exhausted, try again later"})
	case errors.Is(err, model.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &upstreamErr):
		message := upstreamErr.Message
		if message == "" {
			message = "upstream request failed"
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": message})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
