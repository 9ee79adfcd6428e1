// Package eventlog appends session events to a JSON-lines file.
package eventlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	SessionID string            `json:"session_id"`
	Timestamp time.Time         `json:"timestamp"`
	Event     string            `json:"event"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// Logger writes events for one session. A nil *Logger discards everything.
type Logger struct {
	path      string
	sessionID string
	mu        sync.Mutex
	now       func() time.Time
}

// New returns a logger appending to path, or nil when path is empty.
func New(path string) *Logger {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	return &Logger{
		path:      path,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
}

// SessionID identifies every event this logger writes.
func (l *Logger) SessionID() string {
	if l == nil {
		return ""
	}
	return l.sessionID
}

// Emit appends one event. Write failures are dropped; logging never
// interrupts a session.
func (l *Logger) Emit(name string, fields map[string]string) {
	if l == nil || strings.TrimSpace(name) == "" {
		return
	}
	event := Event{
		SessionID: l.sessionID,
		Timestamp: l.now().UTC(),
		Event:     name,
	}
	if len(fields) > 0 {
		event.Fields = fields
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	data = append(data, '\n')
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(data)
}
