package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"taskreef/internal/api"
	"taskreef/internal/loot"
	"taskreef/internal/repository"
	"taskreef/internal/service"
	"taskreef/pkg/auth"
	"taskreef/pkg/logger"

	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	catalog := loot.DefaultCatalog()
	sampler := loot.NewSampler(catalog, nil)

	userService := service.NewUserService(repo)
	streakService := service.NewStreakService(repo)
	taskService := service.NewTaskService(repo, streakService)

	feed := api.NewFeed()
	rewardService := service.NewRewardService(repo, streakService, catalog, sampler).WithFeed(feed)

	if cfg.Notifier.Enabled {
		notifier, err := service.NewNotifier(service.NotifierConfig{
			BotToken: cfg.TelegramAuth.TelegramBotToken,
			Debug:    cfg.Notifier.Debug,
		})
		if err != nil {
			zapLogger.Fatal("Failed to initialize notifier", zap.Error(err))
		}
		rewardService.WithNotifier(notifier)
	}

	telegramAuth := auth.NewTelegramAuth(cfg.TelegramAuth.TelegramBotToken, cfg.TelegramAuth.DebugMode)

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api/v1")
	api.NewUserRoutes(a, userService, telegramAuth)
	api.NewTaskRoutes(a, taskService, telegramAuth)
	api.NewRewardRoutes(a, rewardService, streakService, telegramAuth)
	api.NewFeedRoutes(a, feed)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
