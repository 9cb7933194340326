// Package report implements the single error channel shared by a client
// instance and its backend: every failure inside the core becomes one
// report here plus a neutral return value, never a panic.
package report

import (
	"sync"

	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// Reporter delivers errors either to a registered callback or, by default,
// to the logger: warnings at WARN, debug warnings at DEBUG (so release
// logging levels suppress them), everything else at ERROR.
type Reporter struct {
	logger contracts.Logger

	mu sync.Mutex
	cb contracts.ErrorCallback
}

// New creates a reporter whose default sink is the given logger.
func New(logger contracts.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// SetCallback replaces the sink. A nil callback restores the logger sink.
func (r *Reporter) SetCallback(cb contracts.ErrorCallback) {
	r.mu.Lock()
	r.cb = cb
	r.mu.Unlock()
}

// Report builds a MIDIError, delivers it to the sink, and returns it so
// the failing operation can hand the same value back to the caller.
func (r *Reporter) Report(kind contracts.ErrorKind, text string) *contracts.MIDIError {
	r.mu.Lock()
	cb := r.cb
	r.mu.Unlock()

	if cb != nil {
		cb(kind, text)
		return &contracts.MIDIError{Kind: kind, Text: text}
	}

	switch kind {
	case contracts.Warning:
		r.logger.Warn(text)
	case contracts.DebugWarning:
		r.logger.Debug(text)
	default:
		r.logger.Error(text, r.logger.Field().String("kind", kind.String()))
	}
	return &contracts.MIDIError{Kind: kind, Text: text}
}
