// Package logger writes a JSONL session log for debugging. Each interactive
// session gets its own file named by a fresh session ID. The log is an
// operator aid, not a command history - nothing reads it back.
package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	Level     string         `json:"level"`
	Timestamp string         `json:"timestamp"`
	SessionID string         `json:"sessionId"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Logger appends entries to one session file. The zero value (or a nil
// *Logger) discards everything, so callers don't need to guard each call.
type Logger struct {
	SessionID string
	FilePath  string
}

// New creates a session log under <home>/.deskmate/logs.
func New(home string) (*Logger, error) {
	logDir := filepath.Join(home, ".deskmate", "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	sessionID := uuid.New().String()
	return &Logger{
		SessionID: sessionID,
		FilePath:  filepath.Join(logDir, fmt.Sprintf("%s.jsonl", sessionID)),
	}, nil
}

func (l *Logger) Info(msg string, fields map[string]any) {
	l.append("info", msg, fields)
}

func (l *Logger) Error(msg string, fields map[string]any) {
	l.append("error", msg, fields)
}

func (l *Logger) append(level, msg string, fields map[string]any) {
	if l == nil || l.FilePath == "" {
		return
	}

	entry := Entry{
		Level:     level,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		SessionID: l.SessionID,
		Message:   msg,
		Fields:    fields,
	}

	f, err := os.OpenFile(l.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	// Best effort: a failed log write never disturbs the caller.
	_ = json.NewEncoder(f).Encode(entry)
}
