package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string

	// External HR GraphQL API.
	HRAPIURL     string
	HRAPIToken   string
	HRAPITimeout time.Duration

	// Optional receipts database. Empty means in-memory.
	DatabaseURL string

	// Rate limiting for submission and lookup endpoints.
	SubmitRatePerMin int
	LookupRatePerMin int

	// Wizard session lifetime before idle sessions are evicted.
	SessionTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	hrURL := getEnv("HR_API_URL", "")
	if env == "production" && hrURL == "" {
		log.Printf("HR_API_URL is required in production")
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:              env,
		HRAPIURL:         hrURL,
		HRAPIToken:       getEnv("HR_API_TOKEN", ""),
		HRAPITimeout:     getEnvDuration("HR_API_TIMEOUT", 30*time.Second),
		DatabaseURL:      dbURL,
		SubmitRatePerMin: getEnvInt("SUBMIT_RATE_PER_MIN", 6),
		LookupRatePerMin: getEnvInt("LOOKUP_RATE_PER_MIN", 30),
		SessionTTL:       getEnvDuration("WIZARD_SESSION_TTL", 2*time.Hour),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config env %s invalid int: %v", key, err)
		return def
	}
	return val
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config env %s invalid duration: %v", key, err)
		return def
	}
	return val
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
