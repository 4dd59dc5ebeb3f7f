// Package config loads jobinsights settings from a YAML file, an optional
// .env file and environment variables, in that order of precedence (lowest
// first), and validates the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given
const DefaultPath = "jobinsights.yaml"

// Config holds all application configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Display DisplayConfig `yaml:"display"`
}

// DatasetConfig selects the job listings file.
type DatasetConfig struct {
	// Path is the dataset read by every query (env JOBINSIGHTS_DATASET)
	Path string `yaml:"path"`

	// Proxy routes http(s) dataset downloads through this proxy URL
	// (env JOBINSIGHTS_PROXY). Empty falls back to HTTP_PROXY/HTTPS_PROXY.
	Proxy string `yaml:"proxy"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	// Addr is the listen address (env JOBINSIGHTS_ADDR, default :8080)
	Addr string `yaml:"addr"`

	// RequestTimeout bounds each API request (default 30s)
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (env LOG_LEVEL)
	Level string `yaml:"level"`

	// Format is the log format: text or json (env LOG_FORMAT)
	Format string `yaml:"format"`
}

// DisplayConfig controls terminal output.
type DisplayConfig struct {
	// Format is table, csv or json
	Format string `yaml:"format"`

	// Banner prints the banner before results
	Banner bool `yaml:"banner"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{Path: "data/jobs.csv"},
		Server: ServerConfig{
			Addr:           ":8080",
			RequestTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Display: DisplayConfig{Format: "table", Banner: true},
	}
}

// Load builds the configuration. A missing file at path is not an error;
// an empty path means DefaultPath. Variables from a .env file in the working
// directory are applied without overriding the real environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config load: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config load: parsing %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config load: .env: %w", err)
	}
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("JOBINSIGHTS_DATASET"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := os.Getenv("JOBINSIGHTS_PROXY"); v != "" {
		cfg.Dataset.Proxy = v
	}
	if v := os.Getenv("JOBINSIGHTS_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Dataset.Path) == "" {
		errs = append(errs, "dataset.path must not be empty")
	}
	if c.Server.Addr == "" {
		errs = append(errs, "server.addr must not be empty")
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, "server.request_timeout must be positive")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q must be text or json", c.Logging.Format))
	}
	switch strings.ToLower(c.Display.Format) {
	case "table", "csv", "json":
	default:
		errs = append(errs, fmt.Sprintf("display.format %q must be table, csv or json", c.Display.Format))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
