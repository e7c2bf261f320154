// Package config handles configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Chriiiiiss/to-do-lit/internal/appdir"
)

// Default values.
const (
	DefaultStorageKey = "tasks"
	DefaultDebounceMS = 300
)

// Config holds the full configuration for todolit.
type Config struct {
	// DataDir is the directory holding the task blob store.
	DataDir string `toml:"data_dir"`

	// StorageKey is the blob key the task list lives under.
	StorageKey string `toml:"storage_key"`

	// DebounceMS is the toggle quiet window in milliseconds.
	DebounceMS int `toml:"debounce_ms"`

	// LogDir is where session mutation logs go.
	LogDir string `toml:"log_dir"`

	// NoColor disables TUI styling.
	NoColor bool `toml:"no_color"`
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.todolit/todolit.toml or OS config dir)
// 3. Project config file (todolit.toml or .todolit.toml in cwd)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if userFile := findUserConfigFile(); userFile != "" {
		if err := loadConfigFile(cfg, userFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
		}
	}

	if projFile := findProjectConfigFile(); projFile != "" {
		if err := loadConfigFile(cfg, projFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projFile, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DebounceWindow returns the toggle quiet window as a duration.
func (c *Config) DebounceWindow() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

func setDefaults(cfg *Config) {
	base := appdir.Default()
	cfg.DataDir = base
	cfg.StorageKey = DefaultStorageKey
	cfg.DebounceMS = DefaultDebounceMS
	cfg.LogDir = appdir.LogsPath(base)
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODOLIT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TODOLIT_STORAGE_KEY"); v != "" {
		cfg.StorageKey = v
	}
	if v := os.Getenv("TODOLIT_DEBOUNCE_MS"); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
			cfg.DebounceMS = i
		}
	}
	if v := os.Getenv("TODOLIT_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
}

func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("todolit", flag.ContinueOnError)
	}
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Task store directory")
	fs.StringVar(&cfg.StorageKey, "key", cfg.StorageKey, "Storage key for the task list")
	fs.IntVar(&cfg.DebounceMS, "debounce-ms", cfg.DebounceMS, "Toggle quiet window in milliseconds")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Session log directory")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable TUI styling")
	return fs.Parse(args)
}

func finalize(cfg *Config) error {
	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.LogDir = expandPath(cfg.LogDir)
	if cfg.DataDir == "" {
		return fmt.Errorf("data dir is empty")
	}
	if strings.TrimSpace(cfg.StorageKey) == "" {
		return fmt.Errorf("storage key is empty")
	}
	if cfg.DebounceMS < 0 {
		return fmt.Errorf("debounce window must be >= 0, got %d", cfg.DebounceMS)
	}
	return nil
}

// findUserConfigFile looks for a user-level config file. It checks
// ~/.todolit/todolit.toml first, then the OS config dir.
func findUserConfigFile() string {
	if v := os.Getenv("TODOLIT_CONFIG"); v != "" {
		if _, err := os.Stat(v); err == nil {
			return v
		}
		return ""
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := appdir.ConfigPath(filepath.Join(home, appdir.Dir))
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	if cfgDir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(cfgDir, "todolit", appdir.DefaultConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	names := []string{"todolit.toml", ".todolit.toml"}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// expandPath expands a leading ~ and environment variables in paths.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return home
	}
	if strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, expanded[2:])
	}
	return expanded
}
