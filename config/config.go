// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables

	"github.com/joho/godotenv" // For loading a local .env file
)

type Config struct { // Config struct holds all configuration values
	Port     string // TCP port the HTTP server listens on
	DBPath   string // Path to the SQLite database file
	SeedDemo bool   // Whether to seed demo data on first start
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present (ignored when missing)
	return &Config{
		Port:     getEnv("PORT", "5000"),                 // Get port or use default
		DBPath:   getEnv("DB_PATH", "surgiconnect.db"),   // Get DB path or use default
		SeedDemo: getEnv("SEED_DEMO", "true") != "false", // Seed demo data unless disabled
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
