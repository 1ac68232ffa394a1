// main.go - Entry point for the SurgiConnect backend server

package main // Declares the package name

import ( // Import required packages
	"log" // Logging

	"surgiconnect-backend/config"   // Project config management
	"surgiconnect-backend/database" // Database connection and setup
	"surgiconnect-backend/handlers" // HTTP handlers for API endpoints

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg := config.Load() // Load configuration (port, DB path, demo seeding)

	if err := database.Connect(cfg.DBPath); err != nil { // Connect to the database
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}

	// STEP 2: Create Gin router and configure routes
	r := gin.Default()         // Create a new Gin router (web server)
	handlers.RegisterRoutes(r) // Attach middleware and all API routes

	// STEP 3: Start the web server
	log.Printf("SurgiConnect backend listening on http://0.0.0.0:%s", cfg.Port)
	if cfg.SeedDemo {
		log.Println("Demo users: sarah@example.com / demo123 (patient), john@example.com / demo123 (family)")
	}
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
