package midi

import (
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// In is the input facade. It owns exactly one backend instance for its
// whole lifetime and forwards every operation to it. An In that failed to
// bind a backend stays usable: every operation is a no-op returning the
// neutral value.
type In struct {
	backend  contracts.MIDIIn
	reporter *report.Reporter
}

// NewIn constructs an input client. With no API preference the compiled
// backends are tried in priority order (CoreMIDI, ALSA, WinMM); with an
// explicit preference only that backend is attempted. Binding failure is
// reported once, here, and not again per call.
func NewIn(opts ...contracts.Option) *In {
	options := applyDefaultOptions(opts...)
	reporter := report.New(options.Logger)
	if options.ErrorCallback != nil {
		reporter.SetCallback(options.ErrorCallback)
	}
	return &In{
		backend:  openInput(&options, reporter),
		reporter: reporter,
	}
}

// API returns the bound subsystem, or APIUnspecified when unbound.
func (in *In) API() contracts.API {
	if in.backend == nil {
		return contracts.APIUnspecified
	}
	return in.backend.API()
}

// PortCount re-queries the native subsystem for visible input sources.
func (in *In) PortCount() int {
	if in.backend == nil {
		return 0
	}
	return in.backend.PortCount()
}

// PortName returns the display name of one input source.
func (in *In) PortName(port int) string {
	if in.backend == nil {
		return ""
	}
	return in.backend.PortName(port)
}

// PortNames snapshots the current enumeration. Indices into the result are
// only trustworthy until the device list changes.
func (in *In) PortNames() []string {
	count := in.PortCount()
	names := make([]string, count)
	for i := range names {
		names[i] = in.backend.PortName(i)
	}
	return names
}

// OpenPort connects to the input source at the given index and starts
// message delivery.
func (in *In) OpenPort(port int, name string) error {
	if in.backend == nil {
		return nil
	}
	return in.backend.OpenPort(port, name)
}

// OpenVirtualPort creates a software-only input endpoint where the
// backend supports it.
func (in *In) OpenVirtualPort(name string) error {
	if in.backend == nil {
		return nil
	}
	return in.backend.OpenVirtualPort(name)
}

// ClosePort stops delivery and releases native resources. Idempotent.
func (in *In) ClosePort() {
	if in.backend != nil {
		in.backend.ClosePort()
	}
}

// IsPortOpen reports whether a port is open.
func (in *In) IsPortOpen() bool {
	return in.backend != nil && in.backend.IsPortOpen()
}

// SetClientName renames the native client where the subsystem allows it.
func (in *In) SetClientName(name string) {
	if in.backend != nil {
		in.backend.SetClientName(name)
	}
}

// SetPortName renames the open port where the subsystem allows it.
func (in *In) SetPortName(name string) {
	if in.backend != nil {
		in.backend.SetPortName(name)
	}
}

// SetErrorCallback routes error reports to cb instead of the logger.
func (in *In) SetErrorCallback(cb contracts.ErrorCallback) {
	in.reporter.SetCallback(cb)
	if in.backend != nil {
		in.backend.SetErrorCallback(cb)
	}
}

// SetCallback registers the message callback; messages then bypass the
// queue entirely.
func (in *In) SetCallback(cb contracts.MessageCallback, userData any) error {
	if in.backend == nil {
		return nil
	}
	return in.backend.SetCallback(cb, userData)
}

// CancelCallback unregisters the message callback; messages queue again.
func (in *In) CancelCallback() error {
	if in.backend == nil {
		return nil
	}
	return in.backend.CancelCallback()
}

// IgnoreTypes selects which categories (sysex, timing clock, active
// sense) are dropped before delivery. All three default to dropped.
func (in *In) IgnoreTypes(sysex, timingClock, activeSense bool) {
	if in.backend != nil {
		in.backend.IgnoreTypes(sysex, timingClock, activeSense)
	}
}

// HasMessage reports whether a queued message is waiting.
func (in *In) HasMessage() bool {
	return in.backend != nil && in.backend.HasMessage()
}

// Message pops the oldest queued message, or the empty sentinel.
func (in *In) Message() contracts.Message {
	if in.backend == nil {
		return contracts.Message{}
	}
	return in.backend.Message()
}
