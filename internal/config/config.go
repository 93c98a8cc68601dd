package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds endpoint and cache settings, populated from environment
// variables. Defaults point at the deployed site and its serverless proxies;
// tests override them to point at local servers.
type Config struct {
	// DataBaseURL serves the static species and location catalogs.
	DataBaseURL string
	// FunctionsBaseURL serves the serverless proxies: tide stations, tidal
	// events and the visit counter.
	FunctionsBaseURL string
	// OpenMeteoBaseURL is the weather provider, called directly.
	OpenMeteoBaseURL string
	// StationCachePath is the SQLite file used to keep the last good station
	// catalog for runs where the proxy is unreachable.
	StationCachePath string
	// RequestTimeout bounds every outbound HTTP call.
	RequestTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(envOrDefault("FISHMAP_REQUEST_TIMEOUT", "30s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid FISHMAP_REQUEST_TIMEOUT: %q", os.Getenv("FISHMAP_REQUEST_TIMEOUT"))
	}

	return &Config{
		DataBaseURL:      envOrDefault("FISHMAP_DATA_URL", "https://uk-fishing-map.netlify.app"),
		FunctionsBaseURL: envOrDefault("FISHMAP_FUNCTIONS_URL", "https://uk-fishing-map.netlify.app/.netlify/functions"),
		OpenMeteoBaseURL: envOrDefault("FISHMAP_OPENMETEO_URL", "https://api.open-meteo.com"),
		StationCachePath: envOrDefault("FISHMAP_CACHE_DB", filepath.Join("data", "fishing-map.db")),
		RequestTimeout:   timeout,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
