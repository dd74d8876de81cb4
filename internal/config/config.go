// Package config loads registry configuration with the usual precedence:
// defaults, then config file, then REGISTRY_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rzbill/registry/pkg/log"
	"github.com/rzbill/registry/pkg/store"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

type StoreConfig struct {
	Backend string `yaml:"backend"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	DataDir string      `yaml:"data_dir"`
	Store   StoreConfig `yaml:"store"`
	Log     LogConfig   `yaml:"log"`
}

// Load reads configuration from the optional file at path, layered over
// defaults and under environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("REGISTRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	return &Config{
		DataDir: v.GetString("data_dir"),
		Store: StoreConfig{
			Backend: v.GetString("store.backend"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}, nil
}

// NewLogger builds a logger matching the configured level and format.
func (c *Config) NewLogger() log.Logger {
	opts := []log.LoggerOption{log.WithLevel(log.ParseLevel(c.Log.Level))}
	if strings.EqualFold(c.Log.Format, "json") {
		opts = append(opts, log.WithFormatter(&log.JSONFormatter{}))
	}
	return log.NewLogger(opts...)
}

// OpenStore constructs and opens the configured store backend.
func (c *Config) OpenStore(logger log.Logger) (store.Store, error) {
	switch c.Store.Backend {
	case "", BackendMemory:
		return store.NewMemoryStore(), nil
	case BackendBadger:
		s := store.NewBadgerStore(logger)
		path := filepath.Join(c.DataDir, "registry")
		if err := s.Open(path); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
}

// defaultDataDir returns the OS-appropriate data directory.
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "registry")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(homeDir, ".registry")
}
