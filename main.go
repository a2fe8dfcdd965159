package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"medtrack-server/internal/config"
	"medtrack-server/internal/logger"
	"medtrack-server/internal/middleware"
	"medtrack-server/internal/models"
	"medtrack-server/internal/routes"
	"medtrack-server/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine in containerized deployments.
		fmt.Println("No .env file loaded, relying on environment")
	}

	logger.Init()

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database connection
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		logger.Log.Fatalf("Error connecting to database: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, store.New(db))

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	logger.WithField("port", cfg.Port).Info("server starting")
	if err := router.Run(serverAddr); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
