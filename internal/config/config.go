// Package config loads the dashboard settings from a YAML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"admin-dashboard/internal/layout"
	"admin-dashboard/internal/loading"
	"admin-dashboard/internal/nav"
	"admin-dashboard/internal/types"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "admin-dashboard"
	configFileName = "config.yaml"
)

var ErrInvalid = errors.New("invalid config")

// Config holds the runtime settings
type Config struct {
	InitialRoute  types.Route        `yaml:"initial_route" env:"DASHBOARD_INITIAL_ROUTE"`
	LoadingDelay  time.Duration      `yaml:"loading_delay" env:"DASHBOARD_LOADING_DELAY"`
	PixelsPerCell int                `yaml:"pixels_per_cell" env:"DASHBOARD_PIXELS_PER_CELL"`
	Breakpoints   layout.Breakpoints `yaml:"breakpoints"`
	Mouse         bool               `yaml:"mouse" env:"DASHBOARD_MOUSE"`
	LogFile       string             `yaml:"log_file" env:"DASHBOARD_LOG_FILE"`
	LogLevel      string             `yaml:"log_level" env:"DASHBOARD_LOG_LEVEL"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		InitialRoute:  types.RouteDashboard,
		LoadingDelay:  loading.DefaultDelay,
		PixelsPerCell: layout.DefaultPixelsPerCell,
		Breakpoints:   layout.DefaultBreakpoints(),
		Mouse:         true,
		LogFile:       "admin-dashboard.log",
		LogLevel:      "info",
	}
}

// Dir returns the XDG config directory of the dashboard
func Dir() (string, error) {
	// Check for XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}

	// Fall back to ~/.config on Unix-like systems
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	return filepath.Join(homeDir, ".config", appName), nil
}

// DefaultPath returns the path of config.yaml inside Dir
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the file at path over the defaults, then applies DASHBOARD_*
// environment variables. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the shell cannot lay out
func (c *Config) Validate() error {
	if err := c.Breakpoints.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.PixelsPerCell <= 0 {
		return fmt.Errorf("%w: pixels_per_cell must be positive, got %d", ErrInvalid, c.PixelsPerCell)
	}
	if c.LoadingDelay < 0 {
		return fmt.Errorf("%w: loading_delay must not be negative, got %s", ErrInvalid, c.LoadingDelay)
	}
	route, err := nav.Normalize(c.InitialRoute)
	if err != nil {
		return fmt.Errorf("%w: initial_route: %v", ErrInvalid, err)
	}
	c.InitialRoute = route
	return nil
}

// Write stores cfg as YAML at path, creating the directory
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
