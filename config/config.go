package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Roster seeding
	Roster RosterConfig

	// Feature Flags
	Features *FeatureFlags

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string

	// How long Close waits for the event bus to drain on exit.
	ShutdownTimeout time.Duration
}

// RosterConfig controls the starting data of the gradebook.
type RosterConfig struct {
	// Seed loads the three default students at startup.
	Seed bool
}

// ObservabilityConfig holds logging and metrics settings.
type ObservabilityConfig struct {
	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// Metrics are collected in a private registry and summarized at exit.
	MetricsEnabled   bool
	MetricsNamespace string
}

// Load loads configuration from environment variables.
// A .env file in the working directory is applied first when present;
// variables already set in the environment win.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("dotenv %s: %w", f, err)
		}
	}

	cfg := &Config{}

	// Load App config
	cfg.App = loadAppConfig()

	// Load Roster config
	cfg.Roster = RosterConfig{
		Seed: getEnvBool("ROSTER_SEED", true),
	}

	// Load Feature Flags
	cfg.Features = LoadFeatureFlags()

	// Load Observability config
	cfg.Observability = loadObservabilityConfig(cfg.App)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func loadAppConfig() AppConfig {
	env := Environment(getEnv("APP_ENV", "development"))

	return AppConfig{
		Name:            getEnv("APP_NAME", "gradebook"),
		Environment:     env,
		Debug:           getEnvBool("APP_DEBUG", false),
		Version:         getEnv("APP_VERSION", "0.1.0"),
		ShutdownTimeout: getEnvDuration("APP_SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

func loadObservabilityConfig(app AppConfig) ObservabilityConfig {
	defaultFormat := "text"
	if app.Environment == EnvProduction {
		defaultFormat = "json"
	}
	defaultLevel := "warn"
	if app.Debug {
		defaultLevel = "debug"
	}

	return ObservabilityConfig{
		LogLevel:         getEnv("LOG_LEVEL", defaultLevel),
		LogFormat:        getEnv("LOG_FORMAT", defaultFormat),
		MetricsEnabled:   getEnvBool("METRICS_ENABLED", true),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "gradebook"),
	}
}

// Validate checks if the configuration is valid and reports every problem.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.App.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		result = multierror.Append(result, fmt.Errorf("APP_ENV must be one of development, staging, production (got %q)", c.App.Environment))
	}

	if strings.TrimSpace(c.App.Name) == "" {
		result = multierror.Append(result, errors.New("APP_NAME cannot be empty"))
	}

	switch strings.ToLower(c.Observability.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error (got %q)", c.Observability.LogLevel))
	}

	switch strings.ToLower(c.Observability.LogFormat) {
	case "json", "text":
	default:
		result = multierror.Append(result, fmt.Errorf("LOG_FORMAT must be json or text (got %q)", c.Observability.LogFormat))
	}

	if c.Observability.MetricsEnabled && c.Observability.MetricsNamespace == "" {
		result = multierror.Append(result, errors.New("METRICS_NAMESPACE is required when metrics are enabled"))
	}

	if c.App.ShutdownTimeout <= 0 {
		result = multierror.Append(result, errors.New("APP_SHUTDOWN_TIMEOUT must be positive"))
	}

	return result.ErrorOrNil()
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
