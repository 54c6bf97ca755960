package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"promptly/internal/api"
	"promptly/internal/api/handlers"
	"promptly/internal/service"
	"promptly/pkg/config"
	"promptly/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Promptly service")

	// Initialize services
	classifierService := service.NewClassifierService(appLogger)
	retrieverService := service.NewRetrieverService(&cfg.Retriever, appLogger)
	promptService := service.NewPromptService(appLogger)

	generationService, err := service.NewGenerationService(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize generation service", zap.Error(err))
	}

	contentService := service.NewContentService(
		classifierService,
		retrieverService,
		promptService,
		generationService,
		&cfg.Retriever,
		appLogger,
	)

	// Initialize handlers
	generateHandler := handlers.NewGenerateHandler(contentService, generationService, &cfg.Generation, appLogger)

	// Setup router
	app := api.SetupRouter(generateHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
