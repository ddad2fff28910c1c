package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the event log, relative to the working directory.
const LogFilePath = "logs/sandbox.txt"

// Logger stores scene events (bootstrap, spawns) in memory and appends them
// to a file on disk.
type Logger struct {
	mu    sync.Mutex
	lines []string
}

// New returns a Logger and ensures the logs directory exists.
func New() *Logger {
	_ = os.MkdirAll(filepath.Dir(LogFilePath), 0755)
	return &Logger{}
}

// Log appends a line, prefixed with a [timestamp], to memory and to the log
// file. File errors are ignored: logging never blocks the scene.
func (l *Logger) Log(line string) {
	stamped := "[" + time.Now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
