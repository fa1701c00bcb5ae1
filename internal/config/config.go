package config

import (
	"os"
	"strconv"
)

// DefaultPromotionThreshold is the report count at which a reported value is
// promoted into the scam_sources blocklist.
const DefaultPromotionThreshold = 5

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Database
	DatabaseURL string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, empty = allow all

	// SMS provider (Solapi / CoolSMS)
	SolapiAPIKey    string
	SolapiAPISecret string
	SolapiBaseURL   string // Override for tests; default is the public API
	SMSSender       string // Registered sender number

	// Reporting
	PromotionThreshold int // Reports needed before a value joins the blocklist
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":5000"),
		DatabaseURL:        getEnv("DATABASE_URL", "postgres://localhost:5432/scamshield?sslmode=disable"),
		CORSOrigins:        getEnv("CORS_ORIGINS", ""),
		SolapiAPIKey:       getEnv("SOLAPI_API_KEY", ""),
		SolapiAPISecret:    getEnv("SOLAPI_API_SECRET", ""),
		SolapiBaseURL:      getEnv("SOLAPI_BASE_URL", "https://api.solapi.com"),
		SMSSender:          getEnv("SMS_SENDER", ""),
		PromotionThreshold: getEnvInt("REPORT_PROMOTION_THRESHOLD", DefaultPromotionThreshold),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsSMSEnabled returns true if the SMS provider is fully configured.
func (c *Config) IsSMSEnabled() bool {
	return c.SolapiAPIKey != "" && c.SolapiAPISecret != "" && c.SMSSender != ""
}
