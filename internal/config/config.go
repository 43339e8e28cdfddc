// Package config handles application configuration from environment
// variables and the optional YAML observation-sites file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"calendrica/internal/astro"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Database
	DatabasePath string // Path to SQLite file holding the event tables

	// Authentication
	APIKey string // API key for authenticated endpoints

	// Conversion defaults
	DefaultZone float64 // UTC offset in hours applied when a request names none
	SitesPath   string  // Optional YAML file of extra named observation sites

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Port = getEnvInt("PORT", 8080)
	cfg.Env = getEnv("ENV", EnvDevelopment)

	cfg.DatabasePath = getEnv("DATABASE_PATH", "./data/calendrica.db")

	cfg.APIKey = getEnv("API_KEY", "")

	cfg.DefaultZone = getEnvFloat("DEFAULT_ZONE", 0)
	cfg.SitesPath = getEnv("SITES_PATH", "")

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}

	// API key is required in production
	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}

	// Standard-time offsets beyond this range are caller misuse, not a
	// domain outcome, so they fail hard here at the boundary.
	if c.DefaultZone < -12 || c.DefaultZone > 14 {
		errs = append(errs, fmt.Errorf("DEFAULT_ZONE must be in [-12, 14], got %g", c.DefaultZone))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// LoadSites reads the YAML observation-sites file named by SitesPath.
// The built-in sites (Cairo, Tehran, Paris, Jerusalem) are always
// present; the file adds to them. Each site is validated, including the
// [-12, 14] zone rule.
func (c *Config) LoadSites() ([]astro.Location, error) {
	sites := []astro.Location{astro.Cairo, astro.Tehran, astro.Paris, astro.Jerusalem}
	if c.SitesPath == "" {
		return sites, nil
	}

	data, err := os.ReadFile(c.SitesPath)
	if err != nil {
		return nil, fmt.Errorf("read sites file: %w", err)
	}

	var file struct {
		Sites []astro.Location `yaml:"sites"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sites file: %w", err)
	}

	for _, s := range file.Sites {
		if s.Name == "" {
			return nil, fmt.Errorf("sites file %s: site without a name", c.SitesPath)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("site %q: %w", s.Name, err)
		}
		sites = append(sites, s)
	}
	return sites, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat reads an environment variable as a float with a default fallback.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
