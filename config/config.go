// Package config provides configuration for the support chat backend.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	Port int

	// Database
	DatabaseURL string

	// Documentation corpus
	DocsPath string

	// Completion API
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	LLMTimeout    time.Duration

	// Rate limiting
	RateLimitWindow time.Duration
	RateLimitMax    int
}

// Load loads configuration from a .env file (if present) and environment
// variables.
func Load() *Config {
	// Missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 5000),
		DatabaseURL:     getEnv("DATABASE_URL", "file:supportchat.db?cache=shared&mode=rwc"),
		DocsPath:        getEnv("DOCS_PATH", "docs.json"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LLMTimeout:      time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MS", 900000)) * time.Millisecond,
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
