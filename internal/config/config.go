package config

import (
	"os"
	"strconv"

	"cytostats/internal/errors"
)

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Stats    StatsConfig
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the optional result store settings. An empty URL
// disables persistence.
type DatabaseConfig struct {
	URL string
}

// StatsConfig holds statistic computation defaults.
type StatsConfig struct {
	DensitySmooth float64
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Stats: StatsConfig{
			DensitySmooth: getEnvFloatOrDefault("DENSITY_SMOOTH", 1.0),
		},
	}

	if config.Stats.DensitySmooth <= 0 {
		return nil, errors.ConfigInvalid("DENSITY_SMOOTH must be positive")
	}
	return config, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
