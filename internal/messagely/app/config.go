package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/messagely/internal/messagely/service"
	"github.com/aussiebroadwan/messagely/pkg/cryptox"
	"github.com/aussiebroadwan/messagely/pkg/httpx"
)

type Config struct {
	SecretKey string        // Optional: HS256 signing secret (default: random per process)
	Issuer    string        // Optional: iss claim on issued tokens (default: messagely)
	TokenTTL  time.Duration // Optional: token lifetime, 0 means no exp claim (default: 0)

	BcryptWorkFactor int // Optional: bcrypt cost (default: 12)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./messagely.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	StrictLimit  httpx.RateLimitConfig // RATELIMIT_STRICT_*: /login and /register
	LenientLimit httpx.RateLimitConfig // RATELIMIT_LENIENT_*: everything else
}

func LoadConfig() Config {
	return Config{
		SecretKey:           os.Getenv("SECRET_KEY"),
		Issuer:              getEnvOrDefault("TOKEN_ISSUER", service.DefaultIssuer),
		TokenTTL:            getEnvDurationOrDefault("TOKEN_TTL", 0),
		BcryptWorkFactor:    getEnvIntOrDefault("BCRYPT_WORK_FACTOR", cryptox.DefaultWorkFactor),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "messagely.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		StrictLimit:         httpx.ParseRateLimitFromEnv("STRICT", httpx.StrictLimit),
		LenientLimit:        httpx.ParseRateLimitFromEnv("LENIENT", httpx.LenientLimit),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
