package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/topdesk-mcp/topdesk-mcp-go/internal/topdesk"
)

// Config holds all configuration for the MCP server
type Config struct {
	// Server configuration
	Mode     string // "stdio" or "http"
	Profile  string // Tool profile to expose: "core", "incidents", "all"
	LogLevel string // "debug", "info", "warn", "error"

	// HTTP server configuration
	HTTPPort int

	// TOPdesk connection settings
	TopDesk topdesk.Config
}

// Load loads configuration from environment variables. A .env file in the
// working directory is applied first when present.
// Priority: environment variables > .env file > defaults
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Mode:     getEnv("MCP_MODE", "stdio"),
		Profile:  getEnv("MCP_PROFILE", "all"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getIntEnv("PORT", 8080),

		TopDesk: topdesk.Config{
			BaseURL:  getEnv("TOPDESK_URL", ""),
			Username: getEnv("TOPDESK_USERNAME", ""),
			Password: getEnv("TOPDESK_PASSWORD", ""),
			APIToken: getEnv("TOPDESK_API_TOKEN", ""),
			Timeout:  getDurationEnv("TOPDESK_TIMEOUT", topdesk.DefaultTimeout),
		},
	}

	// Validate mode
	if cfg.Mode != "stdio" && cfg.Mode != "http" {
		return nil, fmt.Errorf("invalid MCP_MODE: %s (must be 'stdio' or 'http')", cfg.Mode)
	}

	// Validate TOPdesk connection settings
	if cfg.TopDesk.BaseURL == "" {
		return nil, fmt.Errorf("TOPDESK_URL is required (e.g. https://yourtenant.topdesk.net)")
	}
	if cfg.TopDesk.APIToken == "" && (cfg.TopDesk.Username == "" || cfg.TopDesk.Password == "") {
		return nil, fmt.Errorf("no TOPdesk credentials configured: set TOPDESK_USERNAME and TOPDESK_PASSWORD for basic auth, or TOPDESK_API_TOKEN for token auth")
	}

	return cfg, nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getIntEnv gets an integer environment variable
func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var intValue int
	_, err := fmt.Sscanf(value, "%d", &intValue)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getDurationEnv gets a duration environment variable
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate profile
	validProfiles := map[string]bool{
		"core":      true,
		"incidents": true,
		"all":       true,
	}

	if !validProfiles[c.Profile] {
		return fmt.Errorf("invalid profile: %s", c.Profile)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
