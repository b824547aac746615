// ABOUTME: This file handles configuration management for the connector bridge
// ABOUTME: Loads environment variables and validates the runtime configuration

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Settings source names
const (
	SettingsSourceEnv  = "env"
	SettingsSourceFile = "file"
)

// Config holds all runtime configuration for the connector bridge
type Config struct {
	// Service configuration
	ServiceName string
	LogLevel    string

	// Bridge HTTP server configuration
	Server ServerConfig

	// Outbound HTTP configuration
	HTTP HTTPConfig

	// Settings source configuration
	Settings SettingsConfig
}

// ServerConfig holds bridge server settings
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// HTTPConfig holds outbound call settings. A zero timeout leaves the
// default transport behavior in place, matching the in-host plugin where
// the host's HTTP facility governs.
type HTTPConfig struct {
	Timeout time.Duration
}

// SettingsConfig selects where connection settings come from
type SettingsConfig struct {
	Source   string
	FilePath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServiceName: getEnvOrDefault("SERVICE_NAME", "miniflux-connector"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),

		Server: ServerConfig{
			Port:            9280,
			ShutdownTimeout: 30 * time.Second,
		},

		Settings: SettingsConfig{
			Source:   getEnvOrDefault("SETTINGS_SOURCE", SettingsSourceEnv),
			FilePath: os.Getenv("SETTINGS_FILE"),
		},
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if val, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = val
		}
	}

	if timeout := os.Getenv("SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		if duration, err := time.ParseDuration(timeout); err == nil {
			cfg.Server.ShutdownTimeout = duration
		}
	}

	if timeout := os.Getenv("HTTP_TIMEOUT"); timeout != "" {
		if duration, err := time.ParseDuration(timeout); err == nil {
			cfg.HTTP.Timeout = duration
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a valid port number, got %d", c.Server.Port)
	}

	switch c.Settings.Source {
	case SettingsSourceEnv:
	case SettingsSourceFile:
		if c.Settings.FilePath == "" {
			return fmt.Errorf("SETTINGS_FILE is required when SETTINGS_SOURCE is %q", SettingsSourceFile)
		}
	default:
		return fmt.Errorf("SETTINGS_SOURCE must be %q or %q, got %q",
			SettingsSourceEnv, SettingsSourceFile, c.Settings.Source)
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
