package contracts

// ErrorKind classifies the severity of a reported error.
type ErrorKind int

const (
	// Warning indicates caller misuse; the operation was a safe no-op.
	Warning ErrorKind = iota
	// DebugWarning is diagnostic only and hidden unless debug logging is on.
	DebugWarning
	// DriverError indicates a native subsystem call failed.
	DriverError
	// NoDevicesFound indicates enumeration yielded nothing at open time.
	NoDevicesFound
	// InvalidParameter indicates an index outside the current enumeration range.
	InvalidParameter
)

// String returns the taxonomy name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case Warning:
		return "WARNING"
	case DebugWarning:
		return "DEBUG_WARNING"
	case DriverError:
		return "DRIVER_ERROR"
	case NoDevicesFound:
		return "NO_DEVICES_FOUND"
	case InvalidParameter:
		return "INVALID_PARAMETER"
	default:
		return "UNKNOWN"
	}
}

// MIDIError is the value delivered to the error sink. Operations that fail
// also return it as a plain error so callers can branch without registering
// a callback. No operation ever panics in place of returning one of these.
type MIDIError struct {
	Kind ErrorKind
	Text string
}

// Error implements the error interface.
func (e *MIDIError) Error() string { return e.Text }

// ErrorCallback receives every error reported by a client instance.
// When registered it replaces the default logger sink entirely.
type ErrorCallback func(kind ErrorKind, text string)
