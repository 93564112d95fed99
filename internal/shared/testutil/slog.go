package testutil

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// DiscardLogger returns a logger whose output goes nowhere. Use it where a
// test needs a *slog.Logger but the log content is irrelevant.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LogRecord represents a captured log record for testing.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// BufferedSlogHandler captures log records for assertions.
type BufferedSlogHandler struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewBufferedSlogHandler creates a new buffered handler for testing.
func NewBufferedSlogHandler() *BufferedSlogHandler {
	return &BufferedSlogHandler{}
}

// Logger returns a slog.Logger writing into the buffer.
func (h *BufferedSlogHandler) Logger() *slog.Logger {
	return slog.New(h)
}

// Handle implements slog.Handler.
func (h *BufferedSlogHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.records = append(h.records, LogRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

// Enabled implements slog.Handler; tests capture all levels.
func (h *BufferedSlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler.
func (h *BufferedSlogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler.
func (h *BufferedSlogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// ContainsMessage checks if any log record contains the given message.
func (h *BufferedSlogHandler) ContainsMessage(message string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, r := range h.records {
		if strings.Contains(r.Message, message) {
			return true
		}
	}
	return false
}

// GetRecords returns a copy of all captured log records.
func (h *BufferedSlogHandler) GetRecords() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	records := make([]LogRecord, len(h.records))
	copy(records, h.records)
	return records
}
