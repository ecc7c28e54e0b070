package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries the tunables of the core. Every value has a working
// default, so a missing config file is not an error.
type Config struct {
	Env           string `yaml:"env" env:"HIBISCUS_ENV" env-default:"local"`
	MaxTreeDepth  int    `yaml:"max_tree_depth" env:"HIBISCUS_MAX_TREE_DEPTH" env-default:"20"`
	DebounceMs    int    `yaml:"debounce_ms" env:"HIBISCUS_DEBOUNCE_MS" env-default:"300"`
	WatchTickMs   int    `yaml:"watch_tick_ms" env:"HIBISCUS_WATCH_TICK_MS" env-default:"100"`
	RecentsDBPath string `yaml:"recents_db_path" env:"HIBISCUS_RECENTS_DB"`
}

// Load reads configuration from an optional YAML file plus environment
// variables. An empty path means environment-only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from environment: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	return &cfg, nil
}

// MustLoad is Load for program startup paths where a bad config is fatal.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

// Debounce returns the debounce window as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// WatchTick returns the watcher poll tick as a duration.
func (c *Config) WatchTick() time.Duration {
	return time.Duration(c.WatchTickMs) * time.Millisecond
}

// RecentsPath resolves the recents database location, defaulting to a
// dotfile in the user home directory.
func (c *Config) RecentsPath() (string, error) {
	if c.RecentsDBPath != "" {
		return c.RecentsDBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".hibiscus-recents.db"), nil
}
