package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/signstudio/signage-backend/config"
	"github.com/signstudio/signage-backend/internal/app/controller"
	"github.com/signstudio/signage-backend/internal/app/repository"
	"github.com/signstudio/signage-backend/internal/app/service"
	"github.com/signstudio/signage-backend/internal/db"
	"github.com/signstudio/signage-backend/internal/render"
	"github.com/signstudio/signage-backend/internal/router"
	"github.com/signstudio/signage-backend/internal/storage"
	"github.com/signstudio/signage-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console",
		EnableColor: true,
	})

	logger.Info("Starting Signage Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Repositories
	catalogRepo := repository.NewCatalogRepository(db.GetDB())
	configRepo := repository.NewConfigurationRepository(db.GetDB())

	// Render pipeline
	compositor, err := render.NewCompositor(cfg.Render.OverlayOffsetY, cfg.Render.FontPath)
	if err != nil {
		logger.Fatal("Failed to initialize compositor", err)
	}
	fetcher := render.NewHTTPFetcher()
	s3Store := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Services
	catalogService := service.NewCatalogService(catalogRepo)
	configService := service.NewConfigurationService(catalogRepo, configRepo, db.GetDB())
	renderService := service.NewRenderService(
		catalogRepo,
		fetcher,
		compositor,
		s3Store,
		cfg.Render.CanvasSize,
		cfg.Render.OverlaySize,
	)

	// Controllers
	configController := controller.NewConfigurationController(configService)
	catalogController := controller.NewCatalogController(catalogService)
	renderController := controller.NewRenderController(renderService)
	uploadController := controller.NewUploadController(s3Store)

	r := router.NewRouter(configController, catalogController, renderController, uploadController, cfg)
	engine := r.Setup()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
