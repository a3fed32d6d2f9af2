package config

import (
	"fmt"
	"os"
	"path/filepath"

	"viewd/internal/errors"
	"viewd/pkg/types"

	"gopkg.in/yaml.v3"
)

// Display backends.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Config represents the application configuration structure.
// It defines the viewport bound, display backend, and scan parameters.
type Config struct {
	Viewport types.Viewport `yaml:"viewport"` // Max rows/cols a frame may occupy
	Display  struct {
		Backend string `yaml:"backend"` // "window" or "terminal"
		Title   string `yaml:"title"`   // Window title
	} `yaml:"display"`
	Scan struct {
		Patterns []string `yaml:"patterns"` // Optional base-name globs; empty = all files
	} `yaml:"scan"`
	Log struct {
		Debug bool   `yaml:"debug"` // Enable debug logging
		File  string `yaml:"file"`  // Log destination; empty = stderr
	} `yaml:"log"`
}

// New returns a configuration populated with defaults.
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Viewport = types.Viewport{Rows: 720, Cols: 1280}
	cfg.Display.Backend = BackendWindow
	cfg.Display.Title = "Browser"
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/viewd/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "viewd", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Viewport.Rows > 0 {
		cfg.Viewport.Rows = tempCfg.Viewport.Rows
	}
	if tempCfg.Viewport.Cols > 0 {
		cfg.Viewport.Cols = tempCfg.Viewport.Cols
	}
	if tempCfg.Display.Backend != "" {
		cfg.Display.Backend = tempCfg.Display.Backend
	}
	if tempCfg.Display.Title != "" {
		cfg.Display.Title = tempCfg.Display.Title
	}
	if len(tempCfg.Scan.Patterns) > 0 {
		cfg.Scan.Patterns = tempCfg.Scan.Patterns
	}
	cfg.Log = tempCfg.Log

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration values that have a restricted domain.
func (c *Config) Validate() error {
	switch c.Display.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return errors.NewConfigError("unknown display backend", c.Display.Backend, errors.InvalidConfig, nil)
	}
	if !c.Viewport.Valid() {
		return errors.NewConfigError("viewport dimensions must be positive", c.Viewport.String(), errors.InvalidConfig, nil)
	}
	return nil
}
