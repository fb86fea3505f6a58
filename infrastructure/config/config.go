// Package config provides configuration for the client.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all client configuration.
type Config struct {
	// Backend gateway origin, e.g. http://localhost:8080
	BaseURL string `yaml:"base_url"`

	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`

	// Directory holding the durable session store.
	StorageDir string `yaml:"storage_dir"`

	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// How long transient success/error banners stay visible.
	BannerTTL time.Duration `yaml:"banner_ttl"`

	EnableMetrics bool `yaml:"enable_metrics"`
}

// LoadConfig loads configuration from an optional YAML file (CONFIG_FILE)
// with environment variables taking precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		BaseURL:       "http://localhost:8080",
		Environment:   "development",
		LogLevel:      "info",
		StorageDir:    defaultStorageDir(),
		HTTPTimeout:   30 * time.Second,
		BannerTTL:     3 * time.Second,
		EnableMetrics: false,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.BaseURL = getEnv("STARTUPHUB_BASE_URL", cfg.BaseURL)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.StorageDir = getEnv("STARTUPHUB_STORAGE_DIR", cfg.StorageDir)
	cfg.HTTPTimeout = getEnvDuration("HTTP_TIMEOUT", cfg.HTTPTimeout)
	cfg.BannerTTL = getEnvDuration("BANNER_TTL", cfg.BannerTTL)
	cfg.EnableMetrics = getEnvBool("ENABLE_METRICS", cfg.EnableMetrics)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not a valid origin", c.BaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive")
	}
	if c.BannerTTL <= 0 {
		return fmt.Errorf("banner_ttl must be positive")
	}
	if c.StorageDir == "" {
		return fmt.Errorf("storage_dir is required")
	}
	return nil
}

// IsDevelopment checks if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".startuphub"
	}
	return filepath.Join(home, ".startuphub")
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvDuration gets a duration environment variable with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
