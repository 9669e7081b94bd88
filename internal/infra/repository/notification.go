package repository

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"barber-booking/internal/pkg/clock"
)

// LineTimeLayout is the bracketed timestamp prefix on every notification line.
const LineTimeLayout = "2006-01-02 15:04:05"

// NotificationLog is the append-only event feed shown on the admin dashboard.
// Appends swallow their own failures: logging an event must never be able to
// fail the operation that produced it.
type NotificationLog struct {
	mu      sync.Mutex
	path    string
	clock   clock.Clock
	slogger *slog.Logger
}

func NewNotificationLog(path string, clk clock.Clock, slogger *slog.Logger) *NotificationLog {
	return &NotificationLog{
		path:    path,
		clock:   clk,
		slogger: slogger,
	}
}

// Append writes one timestamped line. Errors are logged and dropped.
func (l *NotificationLog) Append(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		l.slogger.Error("failed to prepare notification log directory", "error", err)
		return
	}

	line := "[" + l.clock.Now().Format(LineTimeLayout) + "] " + message + "\n"
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		l.slogger.Error("failed to open notification log", "error", err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		l.slogger.Error("failed to append notification", "error", err)
		return
	}
	l.slogger.Info("notification", "message", message)
}

// Recent returns up to limit well-formed lines, most recent first. Lines that
// do not carry the bracketed timestamp prefix are omitted. A missing log file
// means no notifications yet.
func (l *NotificationLog) Recent(limit int) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	recent := make([]string, 0, limit)
	for i := len(lines) - 1; i >= 0 && len(recent) < limit; i-- {
		if _, ok := parseLine(lines[i]); !ok {
			continue
		}
		recent = append(recent, lines[i])
	}
	return recent, nil
}

// parseLine splits a "[timestamp] message" line, reporting whether it is
// well formed.
func parseLine(line string) (string, bool) {
	if !strings.HasPrefix(line, "[") {
		return "", false
	}
	end := strings.Index(line, "] ")
	if end < 0 {
		return "", false
	}
	if _, err := time.Parse(LineTimeLayout, line[1:end]); err != nil {
		return "", false
	}
	return line[end+2:], true
}
