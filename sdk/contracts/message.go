package contracts

// Message is one MIDI message: the raw bytes exactly as reconstructed from
// the native subsystem, plus a timestamp in seconds. Timestamps are
// monotonic relative to a backend-specific origin and are not comparable
// across backends or across close/reopen.
type Message struct {
	Bytes     []byte
	Timestamp float64
}

// Empty reports whether the message is the empty-queue sentinel.
func (m Message) Empty() bool { return len(m.Bytes) == 0 }

// Status returns the leading status byte, or 0 for the sentinel.
func (m Message) Status() byte {
	if len(m.Bytes) == 0 {
		return 0
	}
	return m.Bytes[0]
}

// MessageCallback receives input messages as they arrive. It is invoked
// synchronously from whatever execution context the native subsystem
// delivers on; callback bodies must be safe to run off the caller's own
// goroutines.
type MessageCallback func(timestamp float64, message []byte, userData any)

// Leading status bytes of the three filterable message categories.
const (
	StatusSysexStart  byte = 0xF0
	StatusSysexEnd    byte = 0xF7
	StatusTimingClock byte = 0xF8
	StatusActiveSense byte = 0xFE
)
