package contracts

// MIDIClient is the operation set shared by both directions. Port indices
// are positions in a live enumeration snapshot: the native device list can
// change between calls, so counts and names are re-queried every time and
// an index is only trustworthy until the next enumeration.
type MIDIClient interface {
	// API returns the subsystem this instance is bound to.
	API() API

	// PortCount re-queries the native subsystem for currently visible
	// ports of this client's direction.
	PortCount() int

	// PortName returns the display name of the port at the given index,
	// or "" (with a Warning report) when the index is out of range.
	PortName(port int) string

	// OpenPort connects to the enumerated port at the given index. The
	// name is advisory and used as the native port label where supported.
	// Opening while already connected is a Warning no-op.
	OpenPort(port int, name string) error

	// OpenVirtualPort creates a software-only endpoint visible to other
	// applications on this host. Backends without virtual port support
	// fail softly with a Warning.
	OpenVirtualPort(name string) error

	// ClosePort releases native resources and stops delivery. Idempotent;
	// calling it while not connected is a no-op.
	ClosePort()

	// IsPortOpen reports whether a port (real or virtual) is open.
	IsPortOpen() bool

	// SetClientName and SetPortName are best effort; subsystems that
	// forbid renaming after creation treat them as no-ops.
	SetClientName(name string)
	SetPortName(name string)

	// SetErrorCallback routes every subsequent error report to cb instead
	// of the default logger sink. A nil cb restores the default sink.
	SetErrorCallback(cb ErrorCallback)
}

// MIDIIn is an input client. While open, every native notification becomes
// a Message delivered either to the registered callback (synchronously, on
// the producer context) or, with no callback set, to the bounded queue.
type MIDIIn interface {
	MIDIClient

	// SetCallback registers the message callback. Only one may be set at
	// a time; registering over an existing one is a Warning no-op.
	SetCallback(cb MessageCallback, userData any) error

	// CancelCallback unregisters the callback. A Warning no-op when none
	// is set.
	CancelCallback() error

	// IgnoreTypes selects which message categories are dropped before
	// queueing or dispatch. All three default to true.
	IgnoreTypes(sysex, timingClock, activeSense bool)

	// HasMessage reports whether a queued message is waiting.
	HasMessage() bool

	// Message pops the oldest queued message, or the empty sentinel when
	// the queue is empty (or a callback is registered).
	Message() Message
}

// MIDIOut is an output client.
type MIDIOut interface {
	MIDIClient

	// Send hands one complete MIDI message to the native driver. It
	// returns once the driver has accepted the bytes, not necessarily
	// once they are physically transmitted. A Warning no-op when no port
	// is open.
	Send(message []byte) error
}
