//go:build windows

package midiwinmm

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/leandrodaf/rtmidi/internal/midi/dispatch"
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// midiIn is the WinMM input backend. The driver invokes midiInCallback on
// a thread owned by the multimedia subsystem.
type midiIn struct {
	client
	dispatch *dispatch.Input

	mu        sync.Mutex
	connected atomic.Bool
	handle    hMidiIn
	callback  uintptr
}

// NewInput creates the WinMM input backend.
func NewInput(opts *contracts.ClientOptions, reporter *report.Reporter) (contracts.MIDIIn, error) {
	c, err := newClient(opts, reporter)
	if err != nil {
		return nil, err
	}
	return &midiIn{
		client:   c,
		dispatch: dispatch.New(opts.QueueCapacity, reporter),
	}, nil
}

func (m *midiIn) PortCount() int { return inputDeviceCount() }

func (m *midiIn) PortName(port int) string {
	name, ok := inputDeviceName(port)
	if !ok {
		m.reporter.Report(contracts.Warning, "WinMM input: getPortName: invalid port number")
		return ""
	}
	return name
}

func (m *midiIn) OpenPort(port int, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected.Load() {
		return m.reporter.Report(contracts.Warning, "WinMM input: openPort: a valid connection already exists")
	}

	nDevices := inputDeviceCount()
	if nDevices == 0 {
		return m.reporter.Report(contracts.NoDevicesFound, "WinMM input: openPort: no MIDI input devices found")
	}
	if port < 0 || port >= nDevices {
		return m.reporter.Report(contracts.InvalidParameter, "WinMM input: openPort: invalid port number")
	}

	if m.callback == 0 {
		m.callback = windows.NewCallback(midiInCallback)
	}
	r0, _, err := procMidiInOpen.Call(
		uintptr(unsafe.Pointer(&m.handle)),
		uintptr(port),
		m.callback,
		uintptr(unsafe.Pointer(m)),
		uintptr(callbackFunction),
	)
	if r0 != 0 {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("WinMM input: openPort: error opening MIDI input port: %v", err))
	}

	if r0, _, err = procMidiInStart.Call(uintptr(m.handle)); r0 != 0 {
		procMidiInClose.Call(uintptr(m.handle))
		m.handle = 0
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("WinMM input: openPort: error starting MIDI input: %v", err))
	}

	m.connected.Store(true)
	m.logger.Info("MIDI input port opened", m.logger.Field().Int("port", port))
	return nil
}

// OpenVirtualPort fails softly: WinMM has no virtual ports.
func (m *midiIn) OpenVirtualPort(string) error {
	return m.reporter.Report(contracts.Warning, "WinMM input: openVirtualPort: virtual ports are not supported on Windows")
}

func (m *midiIn) ClosePort() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected.Load() {
		return
	}
	m.connected.Store(false)
	procMidiInStop.Call(uintptr(m.handle))
	procMidiInClose.Call(uintptr(m.handle))
	m.handle = 0
	m.logger.Info("MIDI input port closed")
}

func (m *midiIn) IsPortOpen() bool { return m.connected.Load() }

// midiInCallback runs on the multimedia subsystem's thread. dwParam1
// carries a packed short message; the fixed data-length rules rebuild the
// byte sequence (one data byte for program change and channel pressure,
// none for system bytes, two otherwise). dwParam2 is milliseconds since
// midiInStart.
func midiInCallback(_ uintptr, wMsg uintptr, dwInstance uintptr, dwParam1 uintptr, dwParam2 uintptr) uintptr {
	m := (*midiIn)(unsafe.Pointer(dwInstance))

	switch wMsg {
	case mimData:
		if !m.connected.Load() {
			return 0
		}
		status := byte(dwParam1 & 0xFF)
		if status < 0x80 {
			return 0
		}
		message := []byte{status}
		if status < 0xF0 {
			message = append(message, byte((dwParam1>>8)&0xFF))
			if status&0xF0 != 0xC0 && status&0xF0 != 0xD0 {
				message = append(message, byte((dwParam1>>16)&0xFF))
			}
		}
		m.dispatch.Deliver(float64(dwParam2)/1000.0, message)
	case mimLongData, mimMoreData:
		// Sysex buffers are not registered with the driver, so long
		// messages never arrive here.
	case mimError, mimLongError:
		m.reporter.Report(contracts.DriverError, fmt.Sprintf("WinMM input: driver reported error 0x%X", wMsg))
	case mimOpen, mimClose:
	}
	return 0
}

func (m *midiIn) SetCallback(cb contracts.MessageCallback, userData any) error {
	return m.dispatch.SetCallback(cb, userData)
}

func (m *midiIn) CancelCallback() error {
	return m.dispatch.CancelCallback()
}

func (m *midiIn) IgnoreTypes(sysex, timingClock, activeSense bool) {
	m.dispatch.IgnoreTypes(sysex, timingClock, activeSense)
}

func (m *midiIn) HasMessage() bool { return m.dispatch.HasMessage() }

func (m *midiIn) Message() contracts.Message { return m.dispatch.Message() }
