// Package config loads staffdesk settings from defaults, a YAML file and the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/staffdesk/staffdesk/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// EnvPrefix is prepended to every environment override, e.g. STAFFDESK_DB_DSN
const EnvPrefix = "STAFFDESK_"

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config represents the application configuration
type Config struct {
	Database    Database           `yaml:"database" envPrefix:"DB_"`
	Log         Log                `yaml:"log" envPrefix:"LOG_"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Database selects and locates the relational store
type Database struct {
	Driver         string `yaml:"driver" env:"DRIVER"`
	DSN            string `yaml:"dsn" env:"DSN"`
	SeedSampleData bool   `yaml:"seed_sample_data" env:"SEED"`
}

// Log controls the slog file handler
type Log struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

// Load builds the config in layers: .env file, YAML config file, then
// STAFFDESK_* environment variables. Missing files are not an error.
func Load() (*Config, error) {
	// .env is optional; variables already in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports settings that would make the store unreachable
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database dsn is required for driver %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrUnsupportedDriver, c.Database.Driver, DriverSQLite, DriverPostgres)
	}
	return nil
}

// DataDir returns ~/.staffdesk, where the default database and logs live
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".staffdesk"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "staffdesk", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "staffdesk", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() error {
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if (c.Database.Driver == DriverSQLite && c.Database.DSN == "") || c.Log.File == "" {
		dataDir, err := DataDir()
		if err != nil {
			return err
		}
		if c.Database.Driver == DriverSQLite && c.Database.DSN == "" {
			c.Database.DSN = filepath.Join(dataDir, "staffdesk.db")
		}
		if c.Log.File == "" {
			c.Log.File = filepath.Join(dataDir, "logs", "staffdesk.log")
		}
	}

	c.ColorScheme.ApplyDefaults()
	return nil
}
