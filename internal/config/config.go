// Package config loads and saves the habitrack TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Default data file names, relative to the working directory.
const (
	DefaultDataFile   = "habits_data.json"
	DefaultSQLiteFile = "habits_data.db"
)

// DataFileEnv overrides the storage path when set.
const DataFileEnv = "HABITRACK_DATA_FILE"

// Config holds all habitrack configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
	Categories CategoriesConfig `toml:"categories"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	WindowDays  int `toml:"window_days"`
	HistoryDays int `toml:"history_days"`
}

// StorageConfig selects where habits are persisted.
type StorageConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path,omitempty"`
}

// AppearanceConfig holds theme settings. Theme is the active one; the
// light/dark pair is what the theme toggle switches between.
type AppearanceConfig struct {
	Theme      string `toml:"theme"`
	LightTheme string `toml:"light_theme"`
	DarkTheme  string `toml:"dark_theme"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// CategoriesConfig holds the category suggestions offered by the add form.
type CategoriesConfig struct {
	Suggestions []string `toml:"suggestions,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			WindowDays:  30,
			HistoryDays: 14,
		},
		Storage: StorageConfig{
			Backend: BackendJSON,
		},
		Appearance: AppearanceConfig{
			Theme:      "flexoki-dark",
			LightTheme: "flexoki-light",
			DarkTheme:  "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "habitrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "habitrack")
}

// StateDir returns the XDG-compliant state directory used for logs.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "habitrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "habitrack")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DataPath returns the storage path from env var or config, in that order,
// falling back to the backend's default file name.
func DataPath(cfg Config) string {
	if p := os.Getenv(DataFileEnv); p != "" {
		return p
	}
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path
	}
	if cfg.Storage.Backend == BackendSQLite {
		return DefaultSQLiteFile
	}
	return DefaultDataFile
}

// Categories returns the configured category suggestions, or fallback when
// none are configured.
func Categories(cfg Config, fallback []string) []string {
	if len(cfg.Categories.Suggestions) > 0 {
		return cfg.Categories.Suggestions
	}
	return fallback
}
