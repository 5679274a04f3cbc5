// README: Config loader with env defaults for HTTP, Redis, resolver and pipeline settings.
package config

import (
	"os"
	"strconv"
	"time"
)

type ResolverConfig struct {
	// DefaultLat/DefaultLng substitute for a location that failed to geocode.
	DefaultLat     float64
	DefaultLng     float64
	DefaultCountry string
	// PlaceLimit caps the candidate places kept per waypoint.
	PlaceLimit int
	// OverfetchLimit is how many raw candidates to request before the
	// open-filter and dedup pass trims them down.
	OverfetchLimit int
	// Timeout bounds each individual geocode/search/route call.
	Timeout time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr     string
		CacheTTL time.Duration
	}
	Resolver ResolverConfig
	Maps     struct {
		APIKey string
	}
	AI struct {
		GeminiKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPSENSE_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("TRIPSENSE_REDIS_ADDR", "localhost:6379")
	cfg.Redis.CacheTTL = time.Duration(envOrDefaultInt("TRIPSENSE_GEOCODE_CACHE_TTL_MIN", 24*60)) * time.Minute
	cfg.Resolver.DefaultLat = envOrDefaultFloat("TRIPSENSE_DEFAULT_LAT", 32.7767)
	cfg.Resolver.DefaultLng = envOrDefaultFloat("TRIPSENSE_DEFAULT_LNG", -96.7970)
	cfg.Resolver.DefaultCountry = envOrDefault("TRIPSENSE_DEFAULT_COUNTRY", "US")
	cfg.Resolver.PlaceLimit = envOrDefaultInt("TRIPSENSE_PLACE_LIMIT", 2)
	cfg.Resolver.OverfetchLimit = envOrDefaultInt("TRIPSENSE_OVERFETCH_LIMIT", 10)
	cfg.Resolver.Timeout = time.Duration(envOrDefaultInt("TRIPSENSE_RESOLVE_TIMEOUT_MS", 5000)) * time.Millisecond
	cfg.Maps.APIKey = envOrError("MAPS_API_KEY")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
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
