package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"civic-notify/config"
	audienceUC "civic-notify/internal/audience/usecase"
	broadcastSQLite "civic-notify/internal/broadcast/repository/sqlite"
	broadcastUC "civic-notify/internal/broadcast/usecase"
	directoryHTTP "civic-notify/internal/directory/http"
	"civic-notify/internal/httpserver"
	inboxHTTP "civic-notify/internal/inbox/http"
	"civic-notify/internal/syncbus"
	"civic-notify/pkg/log"
	pkgRedis "civic-notify/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting civic notification service...")

	// Local broadcast audit log
	repo, err := broadcastSQLite.New(logger, cfg.Storage.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open broadcast store: %v", err)
		return
	}
	defer repo.Close()
	logger.Infof(ctx, "Broadcast store opened at %s", cfg.Storage.Path)

	// Sync channel: Redis when sessions span processes, in-memory otherwise.
	var (
		syncChannel syncbus.Channel
		redisClient pkgRedis.IRedis
	)
	if cfg.Redis.Enabled {
		redisClient, err = pkgRedis.New(pkgRedis.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer redisClient.Close()
		syncChannel = syncbus.NewRedis(logger, redisClient)
		logger.Info(ctx, "Redis sync channel initialized")
	} else {
		syncChannel = syncbus.NewMemory().Session()
		logger.Info(ctx, "In-memory sync channel initialized")
	}

	// External collaborators
	directoryClient := directoryHTTP.New(logger, cfg.Directory.BaseURL, cfg.Directory.Timeout)
	inboxStore := inboxHTTP.New(logger, cfg.Inbox.BaseURL, cfg.Inbox.Timeout)

	// Core use case
	resolver := audienceUC.New(logger)
	uc := broadcastUC.New(logger, repo, directoryClient, inboxStore, resolver, syncChannel)

	// HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.Server.Port,
		Environment: cfg.Server.Mode,
		BroadcastUC: uc,
		Redis:       redisClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server stopped with error: %v", err)
		return
	}

	logger.Info(ctx, "Civic notification service stopped gracefully")
}
