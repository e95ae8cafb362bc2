package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adnangitonga/diagnoxis/internal/pkg/config"
	"github.com/adnangitonga/diagnoxis/internal/pkg/database"
	"github.com/adnangitonga/diagnoxis/internal/pkg/health"
	"github.com/adnangitonga/diagnoxis/internal/pkg/logger"
	"github.com/adnangitonga/diagnoxis/internal/pkg/middleware"
	"github.com/adnangitonga/diagnoxis/internal/pkg/server"
	"github.com/adnangitonga/diagnoxis/services/directory/gateway"
	"github.com/adnangitonga/diagnoxis/services/directory/handler"
	httpHandler "github.com/adnangitonga/diagnoxis/services/directory/handler/http"
	"github.com/adnangitonga/diagnoxis/services/directory/repository"
	"github.com/adnangitonga/diagnoxis/services/directory/usecase"
)

func main() {
	appName := "diagnoxis-api"
	configPath := config.GetEnv("CONFIG_PATH", ".env")
	configs := config.InitConfig(configPath)

	// Initialize Zap logger
	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Register cleanup of connections for shutdown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	// Initialize repository
	directoryRepo := repository.NewDirectoryRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	mailGW := gateway.NewMailGateway(configs.SMTP)

	// Initialize usecase
	directoryUC := usecase.NewDirectoryUC(directoryRepo, mailGW, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(directoryUC)
	directoryHandler := httpHandler.NewDirectoryHandler(directoryUC)
	Handler := handler.NewHandler(authHandler, directoryHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server and block until shutdown
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Cleanup failed", logger.Err(err))
	}
}
