// Package dispatch is the input-side delivery core shared by every
// backend: it applies the message filter, then hands each message to the
// registered callback or, with no callback set, to the bounded queue.
package dispatch

import (
	"sync/atomic"

	"github.com/leandrodaf/rtmidi/internal/queue"
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

type registration struct {
	cb       contracts.MessageCallback
	userData any
}

// Input owns the queue, the callback registration and the filter flags for
// one input backend. Deliver runs on the backend's notification context,
// so everything the producer reads is held in atomics.
type Input struct {
	queue    *queue.Ring
	reporter *report.Reporter

	callback atomic.Pointer[registration]

	ignoreSysex atomic.Bool
	ignoreClock atomic.Bool
	ignoreSense atomic.Bool
}

// New creates the dispatcher with the given queue capacity. All three
// ignore flags start out set.
func New(capacity int, reporter *report.Reporter) *Input {
	d := &Input{
		queue:    queue.New(capacity),
		reporter: reporter,
	}
	d.IgnoreTypes(true, true, true)
	return d
}

// SetCallback registers the message callback. Registering while one is
// already set is a soft Warning and leaves the existing callback in place.
func (d *Input) SetCallback(cb contracts.MessageCallback, userData any) error {
	if cb == nil {
		return d.reporter.Report(contracts.Warning, "setCallback: callback function is nil")
	}
	if !d.callback.CompareAndSwap(nil, &registration{cb: cb, userData: userData}) {
		return d.reporter.Report(contracts.Warning, "setCallback: a callback function is already set")
	}
	return nil
}

// CancelCallback unregisters the callback; a soft Warning when none is set.
func (d *Input) CancelCallback() error {
	if d.callback.Swap(nil) == nil {
		return d.reporter.Report(contracts.Warning, "cancelCallback: no callback function was set")
	}
	return nil
}

// IgnoreTypes sets which message categories are dropped before delivery.
func (d *Input) IgnoreTypes(sysex, timingClock, activeSense bool) {
	d.ignoreSysex.Store(sysex)
	d.ignoreClock.Store(timingClock)
	d.ignoreSense.Store(activeSense)
}

// Deliver filters one reconstructed message and dispatches it. Called from
// the backend's notification context; a suppressed message never reaches
// the queue or the callback.
func (d *Input) Deliver(timestamp float64, message []byte) {
	if len(message) == 0 {
		return
	}
	switch message[0] {
	case contracts.StatusSysexStart:
		if d.ignoreSysex.Load() {
			return
		}
	case contracts.StatusTimingClock:
		if d.ignoreClock.Load() {
			return
		}
	case contracts.StatusActiveSense:
		if d.ignoreSense.Load() {
			return
		}
	}

	if reg := d.callback.Load(); reg != nil {
		reg.cb(timestamp, message, reg.userData)
		return
	}
	d.queue.Push(contracts.Message{Bytes: message, Timestamp: timestamp})
}

// HasMessage reports whether a queued message is waiting.
func (d *Input) HasMessage() bool {
	return d.queue.Len() > 0
}

// Message pops the oldest queued message or the empty sentinel.
func (d *Input) Message() contracts.Message {
	return d.queue.Pop()
}
