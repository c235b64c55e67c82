package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"resume-scoring/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	Env             string
	LogLevel        string

	RedisURL     string
	EventChannel string

	SyncFunctionURL  string
	SyncFunctionKey  string
	SyncTimeout      time.Duration
	SyncScheduleSpec string

	PlatformAPIBaseURL string
	PlatformAPIToken   string

	RateLimitRate  float64
	RateLimitBurst int
	ScoringRate    float64
	ScoringBurst   int
	MaxUploadBytes int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		telemetry.Warn("config.missing", map[string]any{"key": "DATABASE_URL", "env": env})
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:        dbURL,
		Env:                env,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisURL:           getEnv("REDIS_URL", ""),
		EventChannel:       getEnv("EVENT_CHANNEL", "job-sync-events"),
		SyncFunctionURL:    getEnv("SYNC_FUNCTION_URL", ""),
		SyncFunctionKey:    getEnv("SYNC_FUNCTION_KEY", ""),
		SyncTimeout:        getDuration("SYNC_TIMEOUT", 5*time.Minute),
		SyncScheduleSpec:   getEnv("SYNC_SCHEDULE", "@every 1h"),
		PlatformAPIBaseURL: strings.TrimRight(getEnv("PLATFORM_API_BASE_URL", "https://api.apify.com"), "/"),
		PlatformAPIToken:   getEnv("PLATFORM_API_TOKEN", ""),
		RateLimitRate:      getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:     getInt("RATE_LIMIT_BURST", 20),
		ScoringRate:        getFloat("SCORING_RATE_LIMIT_RPS", 10),
		ScoringBurst:       getInt("SCORING_RATE_LIMIT_BURST", 40),
		MaxUploadBytes:     int64(getInt("MAX_UPLOAD_BYTES", 10<<20)),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "value": raw})
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "value": raw})
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "value": raw})
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
