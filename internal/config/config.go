package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultNarrowThreshold is the terminal width below which the compact
// layout and the bottom filter drawer are used.
const DefaultNarrowThreshold = 120

type Config struct {
	Icons           string `koanf:"icons"`            // "nerd", "unicode", or "none"
	Theme           string `koanf:"theme"`            // "dark" or "light"
	Dataset         string `koanf:"dataset"`          // optional TOML dataset replacing the built-in one
	StrictDataset   bool   `koanf:"strict_dataset"`   // fail at startup when elements cannot be placed
	NarrowThreshold int    `koanf:"narrow_threshold"` // columns; <= 0 uses the default

	Log LogConfig `koanf:"log"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error or off (default: info)
	File       string `koanf:"file"`        // default: $XDG_STATE_HOME/periodic/periodic.log
	MaxSize    int    `koanf:"max_size"`    // megabytes before rotation (default: 5)
	MaxBackups int    `koanf:"max_backups"` // rotated files kept (default: 3)
	MaxAge     int    `koanf:"max_age"`     // days (default: 28)
	Compress   bool   `koanf:"compress"`
}

// Load reads the user and working-directory config files. extra, when not
// empty, is loaded last and must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}
	if extra != "" {
		if err := k.Load(file.Provider(expandPath(extra)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Icons: "none",
		Theme: "dark",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Dataset != "" {
		cfg.Dataset = expandPath(cfg.Dataset)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/periodic/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "periodic", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetNarrowThreshold returns the responsive breakpoint with the default applied.
func (c *Config) GetNarrowThreshold() int {
	if c.NarrowThreshold <= 0 {
		return DefaultNarrowThreshold
	}
	return c.NarrowThreshold
}

// GetLogConfig returns the log configuration with defaults applied.
// The file path default is resolved by the logging package.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 5
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 28
	}

	return cfg
}
