package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	NodeEnv string
	Port    string
	AI      AIConfig
	CORS    CORSConfig
}

// AIConfig holds upstream completion API configuration
type AIConfig struct {
	// Provider selects the completion backend: "openai" (any
	// OpenAI-compatible endpoint) or "gemini".
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// CORSConfig holds browser cross-origin settings
type CORSConfig struct {
	AllowedOrigin string
}

// Load loads configuration from environment variables.
// A missing AI_API_KEY is not fatal here: the server starts and every
// AI request fails with a configuration error until the key is set.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		NodeEnv: getEnv("NODE_ENV", "development"),
		Port:    getEnv("PORT", "3100"),
		AI: AIConfig{
			Provider: getEnv("AI_PROVIDER", "openai"),
			APIKey:   os.Getenv("AI_API_KEY"),
			BaseURL:  getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
			Model:    getEnv("AI_MODEL", "gpt-4o-mini"),
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
