package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"video-gateway/infrastructure/cache"
	youtubeclient "video-gateway/infrastructure/clients/youtube"
	"video-gateway/infrastructure/configuration"
	"video-gateway/infrastructure/logger"
	"video-gateway/infrastructure/persistence"
	httpHandler "video-gateway/interfaces/http"
	"video-gateway/server"
	"video-gateway/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	app := configuration.C.App

	// The credential pool is fixed at process start; an empty pool is a
	// misconfiguration, not something to limp along with.
	youtubeClient, err := youtubeclient.NewClient(&youtubeclient.Config{
		APIKeys: configuration.C.YouTube.APIKeys,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Upstream client initialization failed")
		os.Exit(1)
	}
	logger.GetLogger().
		WithField("keyCount", len(configuration.C.YouTube.APIKeys)).
		Info("Upstream client initialized")

	psqlDb, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to PostgreSQL")
		os.Exit(1)
	}
	if err := persistence.EnsureSearchCacheSchema(psqlDb); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed ensuring search cache schema")
		os.Exit(1)
	}
	if err := persistence.EnsureEngagementSchema(psqlDb); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed ensuring engagement schema")
		os.Exit(1)
	}
	logger.GetLogger().Info("Database connected.")

	// Redis is optional; the view cache degrades to direct reads without it
	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available, continuing without view cache")
		redisClient = nil
	} else {
		logger.GetLogger().Info("Redis client initialized successfully.")
	}
	viewCache := cache.NewViewCache(redisClient)

	userRepository := persistence.NewUserRepository(psqlDb)
	searchCacheRepository := persistence.NewSearchCacheRepository(psqlDb)
	engagementRepository := persistence.NewEngagementRepository(psqlDb)
	historyRepository := persistence.NewHistoryRepository(psqlDb)

	searchUsecase := usecase.NewSearchUseCase(youtubeClient, searchCacheRepository)
	engagementUsecase := usecase.NewEngagementUseCase(engagementRepository, viewCache)
	historyUsecase := usecase.NewHistoryUseCase(historyRepository, youtubeClient)
	regionResolver := usecase.NewRegionResolver(configuration.C.YouTube.DefaultRegion)

	searchHandler := httpHandler.NewSearchHandler(searchUsecase, regionResolver)
	proxyHandler := httpHandler.NewProxyHandler(youtubeClient)
	engagementHandler := httpHandler.NewEngagementHandler(engagementUsecase)
	historyHandler := httpHandler.NewHistoryHandler(historyUsecase)

	router := server.InitiateRouter(searchHandler, proxyHandler, engagementHandler, historyHandler, userRepository)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
