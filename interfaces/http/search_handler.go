package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"video-gateway/infrastructure/logger"
	"video-gateway/usecase"
)

// ISearchHandler defines the interface for search HTTP handlers
type ISearchHandler interface {
	Search(ctx *gin.Context)
	Trending(ctx *gin.Context)
}

type SearchHandler struct {
	searchUseCase usecase.ISearchUseCase
	regions       *usecase.RegionResolver
}

func NewSearchHandler(searchUseCase usecase.ISearchUseCase, regions *usecase.RegionResolver) ISearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
		regions:       regions,
	}
}

// Search handles GET /api/search?q=
func (h *SearchHandler) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	// A blank query is missing input, not an internal failure
	if strings.TrimSpace(query) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	videos, err := h.searchUseCase.Search(ctx.Request.Context(), query)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Search failed")
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": videos})
}

// Trending handles GET /api/trending?region=
func (h *SearchHandler) Trending(ctx *gin.Context) {
	// trending is a chart query, so a detected country hint may stand in
	// for a missing explicit region
	region := h.regions.Resolve(ctx.GetHeader("CF-IPCountry"), ctx.Query("region"), true)

	videos, err := h.searchUseCase.Trending(ctx.Request.Context(), region)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("region", region).Error("Trending fetch failed")
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "region": region, "data": videos})
}
