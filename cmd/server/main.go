package main

import (
	"context"                      // context package is needed for Redis operations
	"log"                          // log package is needed for logging
	"splitpal/internal/api"        // Custom package for API handlers
	"splitpal/internal/config"     // Custom package for configuration
	"splitpal/internal/db"         // Custom package for database access
	"splitpal/internal/middleware" // Custom package for middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database (MySQL in production, SQLite for local dev)
	gormDB, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/users", api.RegisterHandler(gormDB))             // Registration endpoint
	r.POST("/login", api.LoginHandler(gormDB, cfg.JWTSecret)) // Login endpoint

	// Open read routes
	r.GET("/users", api.ListUsersHandler(gormDB))                                // List users endpoint
	r.GET("/users/:user_id", api.GetUserHandler(gormDB))                         // User detail endpoint
	r.GET("/users/:user_id/balances", api.UserBalancesHandler(gormDB))           // Single-user balances endpoint
	r.GET("/groups", api.ListGroupsHandler(gormDB))                              // List groups endpoint
	r.GET("/groups/:group_id", api.GetGroupHandler(gormDB, redisClient))         // Group detail endpoint (cached)
	r.GET("/groups/:group_id/expenses", api.ListGroupExpensesHandler(gormDB, redisClient)) // Group expenses endpoint (cached)
	r.GET("/groups/:group_id/balances", api.GroupBalancesHandler(gormDB))        // Group balances endpoint
	r.GET("/balances", api.AllUserTotalsHandler(gormDB))                         // All-user totals endpoint

	// Write routes (protected by JWT)
	writeGroup := r.Group("")
	// Protect write routes with JWT middleware and inject Redis client into context
	writeGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), func(c *gin.Context) {
		c.Set("redisClient", redisClient)
		c.Next()
	})
	writeGroup.POST("/groups", api.CreateGroupHandler(gormDB))                      // Create group endpoint
	writeGroup.POST("/groups/:group_id/expenses", api.CreateExpenseHandler(gormDB)) // Create expense endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
