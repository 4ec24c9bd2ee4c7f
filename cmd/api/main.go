package main

import (
	"context"
	"fmt"

	"advisor-alert-srv/config"
	"advisor-alert-srv/internal/app"
	"advisor-alert-srv/internal/httpserver"
	"advisor-alert-srv/pkg/log"
	"advisor-alert-srv/pkg/scope"
)

// @title       Advisor Alert API
// @description Pending-work alerts for sales advisors and their daily email digest.
// @version     1.0
// @host        localhost:8080
// @schemes     http
// @BasePath    /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// @securityDefinitions.apikey InternalKey
// @in header
// @name X-Internal-Key
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	jwtManager, err := scope.New(cfg.Secrets.JWTSecretKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// Stores and use cases
	a, err := app.Build(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		return
	}
	defer a.Close(ctx)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Mode:           cfg.Server.Mode,
		AllowedOrigins: cfg.Server.AllowedOrigins,

		// Domain
		AlertUseCase:    a.Alerts,
		SettingsUseCase: a.Settings,

		// Authentication & Security Configuration
		JWTManager:  jwtManager,
		InternalKey: cfg.Secrets.InternalKey,

		// External services
		PostgresDB: a.DB,
		Redis:      a.Redis,
		Archive:    a.Archive,
		Discord:    a.Discord,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
	logger.Info(ctx, "Cleanup completed")
}
