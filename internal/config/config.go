// README: Config loader with env defaults for HTTP, DB, Redis, and planner settings.
package config

import (
	"os"
	"strconv"
)

type PlannerConfig struct {
	// RadiusKm is the hard geographic radius enforced for single-destination trips.
	RadiusKm float64
	// MonthlyQuota is the per-client itinerary generation allowance per month.
	MonthlyQuota int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Planner PlannerConfig
	AI      struct {
		GeminiKey string
	}
	Maps struct {
		APIKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WAYFARE_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("WAYFARE_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("WAYFARE_REDIS_ADDR", "")
	cfg.Planner.RadiusKm = envOrDefaultFloat("WAYFARE_RADIUS_KM", 55.0)
	cfg.Planner.MonthlyQuota = envOrDefaultInt("WAYFARE_MONTHLY_QUOTA", 100)
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.Maps.APIKey = envOrError("GOOGLE_MAPS_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
