// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all settings, populated from environment variables.
type Config struct {
	OutputDir string
	HTTPAddr  string
	LogLevel  string
	LogFormat string

	// Geocoder configuration. The provider is Nominatim-compatible; the
	// user agent is required by the Nominatim usage policy.
	GeocoderURL       string
	GeocoderUserAgent string
	GeocoderEnabled   bool
	GeocoderTimeout   time.Duration
	GeocoderCacheSize int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(envOrDefault("GEOCODER_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid GEOCODER_TIMEOUT")
	}

	geocoderEnabled := true
	if v := os.Getenv("GEOCODER_ENABLED"); v != "" {
		geocoderEnabled = v == "true"
	}

	cfg := &Config{
		OutputDir: envOrDefault("OUTPUT_DIR", "maps"),
		HTTPAddr:  envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),

		GeocoderURL:       envOrDefault("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: envOrDefault("GEOCODER_USER_AGENT", "footprint-map"),
		GeocoderEnabled:   geocoderEnabled,
		GeocoderTimeout:   timeout,
		GeocoderCacheSize: envIntOrDefault("GEOCODER_CACHE_SIZE", 1000),
	}

	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR must not be empty")
	}
	if cfg.GeocoderEnabled && cfg.GeocoderURL == "" {
		return nil, errors.New("GEOCODER_ENABLED is true but GEOCODER_URL is empty")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
