package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session storage drivers.
const (
	SessionDriverCookie = "cookie"
	SessionDriverToken  = "token"
	SessionDriverRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// BackendURL is the base URL of the external SGPG REST API.
	BackendURL     string
	BackendTimeout time.Duration

	SessionDriver     string
	SessionSecret     string
	SessionTTL        time.Duration
	SessionStaleAfter time.Duration
	SecureCookies     bool
	RedisURL          string

	LoginRatePerMinute int
	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error: .env is optional

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "pretty"),
		BackendURL:         getEnv("BACKEND_URL", "http://localhost:5000/"),
		BackendTimeout:     time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		SessionDriver:      getEnv("SESSION_DRIVER", SessionDriverCookie),
		SessionSecret:      getEnv("SESSION_SECRET", "change-this-to-a-secure-random-string"),
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		SessionStaleAfter:  time.Duration(getEnvInt("SESSION_STALE_AFTER_MINUTES", 120)) * time.Minute,
		SecureCookies:      getEnvBool("SECURE_COOKIES", false),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 10),
		AllowedOrigins:     parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
