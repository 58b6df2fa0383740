package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"video-gateway/domain/repository"
	httpHandler "video-gateway/interfaces/http"
	"video-gateway/interfaces/middleware"
)

func InitiateRouter(
	searchHandler httpHandler.ISearchHandler,
	proxyHandler httpHandler.IProxyHandler,
	engagementHandler httpHandler.IEngagementHandler,
	historyHandler httpHandler.IHistoryHandler,
	userRepository repository.IUser,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "http://localhost:4201", "https://localhost:4200", "https://localhost:4201"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")
	api.Use(middleware.Auth(userRepository))

	api.GET("/search", searchHandler.Search)
	api.GET("/trending", searchHandler.Trending)

	// Raw pass-through to the upstream API; credentials stay server-side
	api.GET("/youtube/:resource", proxyHandler.Dispatch)

	api.GET("/likes", engagementHandler.Likes)
	api.POST("/likes", engagementHandler.LikesAction)
	api.GET("/watch-later", engagementHandler.WatchLater)
	api.POST("/watch-later", engagementHandler.WatchLaterAction)
	api.GET("/saved-videos", engagementHandler.SavedVideos)
	api.POST("/saved-videos", engagementHandler.SavedVideosAction)
	api.GET("/subscriptions", engagementHandler.Subscriptions)
	api.POST("/subscriptions", engagementHandler.SubscriptionsAction)

	api.GET("/history", historyHandler.List)
	api.POST("/history", historyHandler.Append)
	api.DELETE("/history", historyHandler.Clear)

	return router
}
