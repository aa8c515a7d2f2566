package main

import (
	"splitpal/internal/config" // Custom import path (Config)
	"splitpal/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg)            // Create or update the schema
}
