package colour

import (
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Diagnostics receives a note whenever an operation substitutes a safe default
// for malformed input. It never affects control flow.
type Diagnostics interface {
	Fallback(op, input, reason string)
}

// NopDiagnostics discards all fallback notes.
type NopDiagnostics struct{}

// Fallback implements Diagnostics.
func (NopDiagnostics) Fallback(string, string, string) {}

// OrNop returns d, or NopDiagnostics when d is nil.
func OrNop(d Diagnostics) Diagnostics {
	if d == nil {
		return NopDiagnostics{}
	}
	return d
}

// LoggerDiagnostics forwards fallback notes to an hclog logger at debug level.
type LoggerDiagnostics struct {
	logger hclog.Logger
}

// NewLoggerDiagnostics wraps logger. A nil logger yields a null logger.
func NewLoggerDiagnostics(logger hclog.Logger) *LoggerDiagnostics {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &LoggerDiagnostics{logger: logger}
}

// Fallback implements Diagnostics.
func (d *LoggerDiagnostics) Fallback(op, input, reason string) {
	d.logger.Debug("fallback applied", "op", op, "input", input, "reason", reason)
}

// FallbackEvent is a single recorded fallback.
type FallbackEvent struct {
	Op     string
	Input  string
	Reason string
}

// RecordingDiagnostics keeps every fallback in memory. Safe for concurrent use.
type RecordingDiagnostics struct {
	mu     sync.Mutex
	events []FallbackEvent
}

// Fallback implements Diagnostics.
func (r *RecordingDiagnostics) Fallback(op, input, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, FallbackEvent{Op: op, Input: input, Reason: reason})
}

// Events returns a copy of the recorded fallbacks.
func (r *RecordingDiagnostics) Events() []FallbackEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]FallbackEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded fallbacks.
func (r *RecordingDiagnostics) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
