package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/RiskGate/pkg/config"
	"github.com/NeuralTrust/RiskGate/pkg/dependency_container"
	"github.com/NeuralTrust/RiskGate/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/RiskGate/pkg/infra/logger"
	_ "github.com/NeuralTrust/RiskGate/pkg/infra/migrations"
	"github.com/NeuralTrust/RiskGate/pkg/infra/prometheus"
	"github.com/NeuralTrust/RiskGate/pkg/server"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title RiskGate Admin API
// @version 0.1.0
// @description Bot scoring, advisory rate limiting and plan quotas for the quotes API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	serverType := getServerType()
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger(serverType)

	cfg, err := config.Load("config")
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	if cfg.Metrics.Enabled {
		prometheus.Initialize()
	}

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Error("failed to close database")
		}
	}()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
		DB:     db,
	})
	if err != nil {
		logger.Fatalf("failed to build dependencies: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.WithError(err).Error("failed to release dependencies")
		}
	}()

	srv := initializeServer(serverType, cfg, logger, container)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.WithField("server", serverType).Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		return
	}
	logger.Info("server gracefully stopped")
}

func getServerType() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "proxy"
}

func initializeServer(
	serverType string,
	cfg *config.Config,
	logger *logrus.Logger,
	container *dependency_container.Container,
) server.Server {
	switch serverType {
	case "admin":
		return server.NewAdminServer(server.AdminServerDI{
			Config:              cfg,
			Logger:              logger,
			MiddlewareTransport: container.MiddlewareTransport,
			HandlerTransport:    container.HandlerTransport,
		})
	case "worker":
		return server.NewWorkerServer(server.WorkerServerDI{
			Config:    cfg,
			Logger:    logger,
			Scheduler: container.Scheduler,
			Exports:   container.ExportWorker,
		})
	default:
		return server.NewProxyServer(server.ProxyServerDI{
			Config:              cfg,
			Logger:              logger,
			MiddlewareTransport: container.MiddlewareTransport,
			HandlerTransport:    container.HandlerTransport,
		})
	}
}
