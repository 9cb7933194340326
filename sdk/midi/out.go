package midi

import (
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// Out is the output facade, the sending counterpart of In.
type Out struct {
	backend  contracts.MIDIOut
	reporter *report.Reporter
}

// NewOut constructs an output client with the same selection rules as
// NewIn.
func NewOut(opts ...contracts.Option) *Out {
	options := applyDefaultOptions(opts...)
	reporter := report.New(options.Logger)
	if options.ErrorCallback != nil {
		reporter.SetCallback(options.ErrorCallback)
	}
	return &Out{
		backend:  openOutput(&options, reporter),
		reporter: reporter,
	}
}

// API returns the bound subsystem, or APIUnspecified when unbound.
func (out *Out) API() contracts.API {
	if out.backend == nil {
		return contracts.APIUnspecified
	}
	return out.backend.API()
}

// PortCount re-queries the native subsystem for visible destinations.
func (out *Out) PortCount() int {
	if out.backend == nil {
		return 0
	}
	return out.backend.PortCount()
}

// PortName returns the display name of one destination.
func (out *Out) PortName(port int) string {
	if out.backend == nil {
		return ""
	}
	return out.backend.PortName(port)
}

// PortNames snapshots the current enumeration.
func (out *Out) PortNames() []string {
	count := out.PortCount()
	names := make([]string, count)
	for i := range names {
		names[i] = out.backend.PortName(i)
	}
	return names
}

// OpenPort connects to the destination at the given index.
func (out *Out) OpenPort(port int, name string) error {
	if out.backend == nil {
		return nil
	}
	return out.backend.OpenPort(port, name)
}

// OpenVirtualPort creates a software-only output endpoint where the
// backend supports it.
func (out *Out) OpenVirtualPort(name string) error {
	if out.backend == nil {
		return nil
	}
	return out.backend.OpenVirtualPort(name)
}

// ClosePort releases native resources. Idempotent.
func (out *Out) ClosePort() {
	if out.backend != nil {
		out.backend.ClosePort()
	}
}

// IsPortOpen reports whether a port is open.
func (out *Out) IsPortOpen() bool {
	return out.backend != nil && out.backend.IsPortOpen()
}

// SetClientName renames the native client where the subsystem allows it.
func (out *Out) SetClientName(name string) {
	if out.backend != nil {
		out.backend.SetClientName(name)
	}
}

// SetPortName renames the open port where the subsystem allows it.
func (out *Out) SetPortName(name string) {
	if out.backend != nil {
		out.backend.SetPortName(name)
	}
}

// SetErrorCallback routes error reports to cb instead of the logger.
func (out *Out) SetErrorCallback(cb contracts.ErrorCallback) {
	out.reporter.SetCallback(cb)
	if out.backend != nil {
		out.backend.SetErrorCallback(cb)
	}
}

// Send hands one complete MIDI message to the native driver.
func (out *Out) Send(message []byte) error {
	if out.backend == nil {
		return nil
	}
	return out.backend.Send(message)
}
