package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"food-hub-api/config"
	"food-hub-api/events"
	"food-hub-api/handlers"
	"food-hub-api/logging"
	"food-hub-api/middleware"
	"food-hub-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Init()

	logger := logging.New(config.GetEnv("LOG_LEVEL", "info"))

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Optional Kafka domain events
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		handlers.Events = events.NewProducer(strings.Split(brokers, ","))
		defer handlers.Events.Close()
		logger.Info("event producer enabled", "brokers", brokers)
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Error translation — must wrap every route
	r.Use(middleware.ErrorHandler())

	// Uploaded meal images
	r.Static("/uploads", "./public/uploads")

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food-Hub API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Food-Hub API",
			"health":  "/health",
			"api":     "/api/v1",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	logger.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
