package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a Blob backed by one file per key under a root directory.
type File struct {
	dir string
}

// NewFile creates the root directory if needed and returns a file store.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("store dir is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &File{dir: dir}, nil
}

// Dir returns the store's root directory.
func (f *File) Dir() string {
	return f.dir
}

// Get reads the blob for key. A missing file means the key is absent.
func (f *File) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read blob %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes the blob for key, overwriting prior content.
func (f *File) Set(key, value string) error {
	if err := os.WriteFile(f.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("write blob %q: %w", key, err)
	}
	return nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, sanitizeKey(key)+".json")
}

// sanitizeKey maps a storage key to a safe filename component.
func sanitizeKey(key string) string {
	if strings.TrimSpace(key) == "" {
		return "blob"
	}

	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		valid := (c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '_' || c == '-'
		if !valid {
			b.WriteByte('_')
			continue
		}
		b.WriteByte(c)
	}

	out := strings.Trim(b.String(), "_")
	if out == "" {
		return "blob"
	}
	return out
}
