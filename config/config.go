package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	SecretKey   string
	TokenExpiry int // minutes
	BcryptCost  int

	// CORS settings (permissive defaults for development)
	CORSOrigins     []string
	CORSMethods     []string
	CORSHeaders     []string
	CORSCredentials bool

	// Redis configuration (optional, login rate limiting)
	RedisURL      string
	RedisPassword string

	// Rate limiting
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env if present; ignored in production where env is set directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		SecretKey:   getEnv("SECRET_KEY", ""),
		TokenExpiry: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		BcryptCost:  getEnvInt("BCRYPT_COST", 12),

		CORSOrigins:     getEnvList("CORS_ORIGINS", []string{"*"}),
		CORSMethods:     getEnvList("CORS_METHODS", []string{"*"}),
		CORSHeaders:     getEnvList("CORS_HEADERS", []string{"*"}),
		CORSCredentials: getEnvBool("CORS_CREDENTIALS", true),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.SecretKey == "" {
		if os.Getenv("GIN_MODE") == "release" {
			log.Fatal("SECRET_KEY must be set in production")
		}
		log.Println("WARNING: SECRET_KEY not set, using insecure development default.")
		cfg.SecretKey = "dev-secret-key-change-in-production"
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList parses a comma-separated environment variable into a slice
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
