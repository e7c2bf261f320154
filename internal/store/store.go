// Package store provides the key-value blob persistence port and its
// backends. Each key holds one string blob, mirroring a browser-style
// local storage surface.
package store

import "sync"

// TasksKey is the single key under which the task list blob lives.
const TasksKey = "tasks"

// Blob is the persistence port. Get reports whether the key exists;
// Set overwrites any prior content unconditionally.
type Blob interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Memory is a map-backed Blob for tests and ephemeral runs.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the blob stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
