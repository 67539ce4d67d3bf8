// ============================================================================
// Pitagoras - Right-Triangle Trainer
// ============================================================================
//
// Package:     config
// Description: TOML application configuration with defaults and validation
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lmoreno/pitagoras/internal/apperr"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Diagram DiagramConfig `toml:"diagram"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Theme    string `toml:"theme"`     // "dark" or "light"
	LogFile  string `toml:"log_file"`  // empty disables logging
	LogLevel string `toml:"log_level"` // debug, info, warn, error
}

// DiagramConfig holds the triangle diagram settings
type DiagramConfig struct {
	MaxWidth  int  `toml:"max_width"`
	MaxHeight int  `toml:"max_height"`
	ASCII     bool `toml:"ascii"` // plain ASCII instead of box-drawing characters
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		General: GeneralConfig{
			Theme:    "dark",
			LogLevel: "info",
		},
		Diagram: DiagramConfig{
			MaxWidth:  40,
			MaxHeight: 12,
		},
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pitagoras", "config.toml")
	}
	return filepath.Join(home, ".pitagoras", "config.toml")
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error: the defaults apply.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), apperr.Wrap(err, apperr.CodeConfig, "parsing config file")
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot use
func (c Config) Validate() error {
	switch c.General.Theme {
	case "dark", "light":
	default:
		return apperr.Newf(apperr.CodeConfig, "unknown theme %q (use dark or light)", c.General.Theme)
	}

	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return apperr.Newf(apperr.CodeConfig, "unknown log level %q", c.General.LogLevel)
	}

	if c.Diagram.MaxWidth < 10 {
		return apperr.New(apperr.CodeConfig, "diagram max_width must be at least 10")
	}
	if c.Diagram.MaxHeight < 4 {
		return apperr.New(apperr.CodeConfig, "diagram max_height must be at least 4")
	}
	return nil
}
