package main

import (
	"log"
	"os"
	"time"

	_ "oncall-directory-backend/docs" // This is needed for swag
	"oncall-directory-backend/internal/api/routes"
	"oncall-directory-backend/internal/cache"
	"oncall-directory-backend/internal/config"
	"oncall-directory-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			On-Call Directory Backend API
//	@version		1.0
//	@description	Backend API for the medical on-call directory: resolving the active on-call provider per specialty and healthcare plan, reconciling staged schedule edits, and managing the provider directory.

//	@contact.name	API Support

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

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

	// Initialize the resolution cache; nil when no Redis address is configured
	resolutionCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, time.Duration(cfg.CacheTTLSec)*time.Second)
	if resolutionCache != nil {
		if err := resolutionCache.Ping(); err != nil {
			logrus.WithError(err).Warn("Redis unreachable, continuing without resolution cache")
			resolutionCache = nil
		}
		defer resolutionCache.Close()
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, resolutionCache)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
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
