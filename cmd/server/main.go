package main

import (
	"context"
	"log"
	"os"
	"time"

	"or-caseflow-backend/internal/api/routes"
	"or-caseflow-backend/internal/config"
	"or-caseflow-backend/internal/database"
	"or-caseflow-backend/internal/roster"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "or-caseflow-backend/docs" // This is needed for swag
)

//	@title			OR Caseflow Backend API
//	@version		1.0
//	@description	Backend API for the operating room coordination board: case registration, lifecycle tracking, roster-based room assignment and porter dispatch.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8088
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Load the duty roster; a missing file falls back to the built-in plan
	rost, err := roster.LoadFile(cfg.RosterFile)
	if err != nil {
		logrus.Fatal("Failed to load roster:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router and services
	router, services := routes.SetupRoutes(db, cfg, rost)

	// Background workers
	startSweepLoop(services, cfg)
	startDispatchLoop(services, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8088"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

// startSweepLoop periodically settles cases past the returning grace period
func startSweepLoop(services *routes.Services, cfg *config.Config) {
	if cfg.SweepIntervalSec == 0 {
		logrus.Info("Returning sweep disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(time.Duration(cfg.SweepIntervalSec) * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			result, err := services.Lifecycle.SweepReturning()
			if err != nil {
				logrus.Errorf("Returning sweep failed: %v", err)
				continue
			}
			if len(result.Returned) > 0 || len(result.Incomplete) > 0 {
				logrus.WithFields(logrus.Fields{
					"returned":   len(result.Returned),
					"incomplete": len(result.Incomplete),
				}).Info("Returning sweep settled cases")
			}
		}
	}()
}

// startDispatchLoop periodically mirrors today's board onto the runner board
func startDispatchLoop(services *routes.Services, cfg *config.Config) {
	if !cfg.RunnerEnabled || cfg.DispatchIntervalSec == 0 {
		logrus.Info("Runner dispatch disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(time.Duration(cfg.DispatchIntervalSec) * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			today := time.Now().Format("2006-01-02")
			if err := services.Dispatch.Cycle(ctx, today); err != nil {
				logrus.Warnf("Dispatch cycle failed: %v", err)
			}
			cancel()
		}
	}()
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
