// Package audit appends guard decisions to a JSON lines file. Claude Code
// can fire several hook processes at once, so writes are serialized with a
// sidecar file lock.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Entry is one recorded guard decision.
type Entry struct {
	Time     time.Time `json:"time"`
	Allowed  bool      `json:"allowed"`
	RuleName string    `json:"rule_name,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// Logger appends entries to a JSON lines file at a fixed path.
type Logger struct {
	path string
	now  func() time.Time
}

// NewLogger creates a logger writing to the given path.
func NewLogger(path string) *Logger {
	return &Logger{
		path: path,
		now:  time.Now,
	}
}

// Record appends one entry to the log file, creating the file and its
// parent directory when missing. Entries with a zero time are stamped
// with the current time.
func (l *Logger) Record(entry Entry) error {
	if entry.Time.IsZero() {
		entry.Time = l.now()
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	fileLock := flock.New(l.path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire log lock: %w", err)
	}
	defer fileLock.Unlock()

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(entry); err != nil {
		return fmt.Errorf("failed to write log entry: %w", err)
	}

	return nil
}
