package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application configuration
type Config struct {
	// Server
	Port               string
	Env                string
	CORSAllowedOrigins []string

	// Database
	DBPath string

	// Logging
	LogFile string

	// Auth
	JWTSecret        string
	JWTExpirationDur time.Duration
	BcryptCost       int

	// Login throttling, per client IP
	LoginRateLimit float64
	LoginRateBurst int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DBPath:             getEnv("DB_PATH", "orbit.db"),
		LogFile:            getEnv("LOG_FILE", ""),
		JWTSecret:          getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		BcryptCost:         getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		LoginRateLimit:     getEnvFloat("LOGIN_RATE_LIMIT", 1),
		LoginRateBurst:     getEnvInt("LOGIN_RATE_BURST", 5),
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	if config.BcryptCost < bcrypt.MinCost || config.BcryptCost > bcrypt.MaxCost {
		log.Printf("Warning: BCRYPT_COST %d out of range, falling back to %d\n", config.BcryptCost, bcrypt.DefaultCost)
		config.BcryptCost = bcrypt.DefaultCost
	}

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %g\n", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
