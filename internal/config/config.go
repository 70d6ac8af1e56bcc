// Package config loads the launcher configuration file and captures
// the process environment the resolution engine is allowed to see.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
	Paths   PathsConfig   `mapstructure:"paths"`
}

// SearchConfig controls interpreter discovery
type SearchConfig struct {
	// ExtraPaths are directories scanned after the PATH entries.
	ExtraPaths []string `mapstructure:"extra_paths"`
	// DefaultVersion is a version preference ("3" or "3.6") consulted
	// when neither a flag, a venv, a shebang nor PY_PYTHON decides.
	DefaultVersion string `mapstructure:"default_version"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	LogFile string `mapstructure:"log_file"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".config", "pylaunch"))
	}
	viper.AddConfigPath(".")

	setDefaults()

	// Environment variable overrides
	viper.SetEnvPrefix("PYLAUNCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)
	for i, path := range cfg.Search.ExtraPaths {
		cfg.Search.ExtraPaths[i] = expandPath(path)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("search.extra_paths", []string{})
	viper.SetDefault("search.default_version", "")

	// A launcher should be silent and stateless unless asked not to
	// be: warnings only, no log file.
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.color", "auto")
	viper.SetDefault("paths.log_file", "")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
