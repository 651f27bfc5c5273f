// Package logging provides the shared application logger used by the demo:
// a timestamped file logger meant to exist exactly once per process, resolved
// through a singleton.Wrapper so every caller writes to the same file handle.
package logging

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Modes accepted by Open.
const (
	ModeAppend   = "append"
	ModeTruncate = "truncate"
)

const timeLayout = "2006-01-02 15:04:05"

// Logger writes timestamped lines to a single log file.
// Writes are serialized; the file handle is opened once and reused.
type Logger struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// Open creates a Logger writing to path. Mode is ModeAppend or ModeTruncate;
// anything else falls back to ModeAppend. The file is created if missing.
func Open(path, mode string) (*Logger, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if mode == ModeTruncate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}

	l := &Logger{file: f, path: path}
	if err := l.Write("Logger initialized."); err != nil {
		_ = f.Close()
		return nil, err
	}
	return l, nil
}

// Path returns the log file path the logger was opened with.
func (l *Logger) Path() string { return l.path }

// Write appends a timestamped line to the log file.
func (l *Logger) Write(message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("[%s] %s\n", time.Now().Format(timeLayout), message)
	if _, err := l.file.WriteString(line); err != nil {
		return fmt.Errorf("logging: write %s: %w", l.path, err)
	}
	return nil
}

// Close writes a final line and closes the file.
// Call at program exit; the logger is unusable afterwards.
func (l *Logger) Close() error {
	if err := l.Write("Logger closed."); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
