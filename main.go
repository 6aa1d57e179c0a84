package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/easylaptop/server/api/v1"
	"github.com/easylaptop/server/config"
	"github.com/easylaptop/server/database"
)

func main() {
	// Load environment variables and build the process-wide configuration
	config.LoadEnv()
	cfg := config.New()

	// Connect to the database and run migrations
	database.Initialize(cfg.DatabaseURL)

	// Optional demo data for local development
	if cfg.SeedDemoData {
		if err := database.SeedDemoData(cfg.BcryptCost); err != nil {
			log.Printf("Warning: failed to seed demo data: %v", err)
		}
	}

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Serve uploaded images
	router.Static("/uploads", cfg.UploadDir)

	// Basic liveness route
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Easy Laptop API is running!",
		})
	})

	// Register API routes
	v1.RegisterRoutes(router.Group(""), cfg)

	// Start server
	log.Printf("🚀 Easy Laptop API starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
