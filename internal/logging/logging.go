// Package logging writes per-session JSONL mutation logs.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Record is one logged mutation.
type Record struct {
	Time  time.Time `json:"ts"`
	Op    string    `json:"op"`
	ID    string    `json:"id,omitempty"`
	Title string    `json:"title,omitempty"`
	Count int       `json:"count"`
}

// SessionLogger appends mutation records to one JSONL file per session.
// A nil logger is valid and drops everything; write errors are dropped
// too, so logging never blocks a mutation.
type SessionLogger struct {
	SessionID string
	Path      string

	mu   sync.Mutex
	file *os.File
}

// NewSession creates the log directory and a fresh session file.
func NewSession(dir string) (*SessionLogger, error) {
	if dir == "" {
		return nil, fmt.Errorf("log dir is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	id := sessionID()
	path := filepath.Join(dir, fmt.Sprintf("%s.jsonl", id))
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	return &SessionLogger{
		SessionID: id,
		Path:      path,
		file:      file,
	}, nil
}

// Log appends one record. Safe on a nil logger.
func (l *SessionLogger) Log(op, id, title string, count int) {
	if l == nil {
		return
	}
	rec := Record{
		Time:  time.Now().UTC(),
		Op:    op,
		ID:    id,
		Title: title,
		Count: count,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	l.file.Write(data)
}

// Close closes the session file. Safe on a nil logger.
func (l *SessionLogger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func sessionID() string {
	return fmt.Sprintf("%s-%d", time.Now().UTC().Format("20060102-150405"), os.Getpid())
}
