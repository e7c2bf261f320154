// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("TODOLIT_CONFIG", "")
	t.Setenv("TODOLIT_DATA_DIR", "")
	t.Setenv("TODOLIT_STORAGE_KEY", "")
	t.Setenv("TODOLIT_DEBOUNCE_MS", "")
	t.Setenv("TODOLIT_LOG_DIR", "")
	t.Setenv("NO_COLOR", "")
	return home
}

func TestDefaults(t *testing.T) {
	isolateHome(t)
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.StorageKey != DefaultStorageKey {
		t.Errorf("StorageKey: got %q, want %q", cfg.StorageKey, DefaultStorageKey)
	}
	if cfg.DebounceMS != DefaultDebounceMS {
		t.Errorf("DebounceMS: got %d, want %d", cfg.DebounceMS, DefaultDebounceMS)
	}
	if cfg.DataDir == "" || cfg.LogDir == "" {
		t.Errorf("empty default dirs: %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("TODOLIT_DATA_DIR", "/tmp/todolit-test-data")
	t.Setenv("TODOLIT_DEBOUNCE_MS", "150")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/tmp/todolit-test-data" {
		t.Errorf("DataDir: got %q", cfg.DataDir)
	}
	if cfg.DebounceMS != 150 {
		t.Errorf("DebounceMS: got %d, want 150", cfg.DebounceMS)
	}
}

func TestLoadFlagsBeatEnv(t *testing.T) {
	isolateHome(t)
	t.Setenv("TODOLIT_DEBOUNCE_MS", "150")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"-debounce-ms", "40"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DebounceMS != 40 {
		t.Errorf("DebounceMS: got %d, want 40", cfg.DebounceMS)
	}
}

func TestLoadUserConfigFile(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "todolit.toml")
	content := "storage_key = \"mylist\"\ndebounce_ms = 90\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TODOLIT_CONFIG", path)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StorageKey != "mylist" {
		t.Errorf("StorageKey: got %q, want mylist", cfg.StorageKey)
	}
	if cfg.DebounceMS != 90 {
		t.Errorf("DebounceMS: got %d, want 90", cfg.DebounceMS)
	}
}

func TestLoadRejectsNegativeDebounce(t *testing.T) {
	isolateHome(t)
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := Load(fs, []string{"-debounce-ms", "-5"}); err == nil {
		t.Error("expected error for negative debounce window")
	}
}

func TestDebounceWindow(t *testing.T) {
	cfg := &Config{DebounceMS: 300}
	if got := cfg.DebounceWindow(); got != 300*time.Millisecond {
		t.Errorf("DebounceWindow: got %v", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/x", filepath.Join(home, "x")},
		{"/abs/path", "/abs/path"},
	}
	for _, tt := range tests {
		if got := expandPath(tt.in); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
