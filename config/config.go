// ABOUTME: Application configuration loaded from an xdg data path
// ABOUTME: Falls back to defaults on missing or invalid config files
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
)

const (
	// AppName names the xdg data directory holding config and the KV store.
	AppName = "pipecrm"

	// ConfigFileName is where local settings live inside the data dir.
	ConfigFileName = "config.json"

	// DefaultFeedLimit caps the recent-contacts and recent-activities feeds.
	DefaultFeedLimit = 5
)

// Config holds local application settings. The pipeline stage list is
// deliberately not configurable here.
type Config struct {
	// DataDir overrides where the KV store lives (default: xdg data dir).
	DataDir string `json:"data_dir,omitempty"`

	// FeedLimit is the top-N size for dashboard feeds and the forecast.
	FeedLimit int `json:"feed_limit,omitempty"`

	// ExportDir is the default destination for export files.
	ExportDir string `json:"export_dir,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:   filepath.Join(xdg.DataHome, AppName, "kv"),
		FeedLimit: DefaultFeedLimit,
		ExportDir: ".",
	}
}

func configPath() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, ConfigFileName), nil
}

// Load reads config from disk, applies defaults for missing fields, then
// PIPECRM_* environment overrides. Missing or invalid files yield defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return applyEnv(cfg), nil //nolint:nilerr // defaults on path error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return nil, err
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		// Invalid config, use defaults
		return applyEnv(cfg), nil //nolint:nilerr // defaults on parse error
	}

	if loaded.DataDir != "" {
		cfg.DataDir = loaded.DataDir
	}
	if loaded.FeedLimit > 0 {
		cfg.FeedLimit = loaded.FeedLimit
	}
	if loaded.ExportDir != "" {
		cfg.ExportDir = loaded.ExportDir
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg *Config) *Config {
	if v := os.Getenv("PIPECRM_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PIPECRM_FEED_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FeedLimit = n
		}
	}
	if v := os.Getenv("PIPECRM_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	return cfg
}

// Save persists the config to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
