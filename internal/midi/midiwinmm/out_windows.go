//go:build windows

package midiwinmm

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// midiOut is the WinMM output backend. Messages go out through
// midiOutShortMsg, which carries at most a status byte and two data bytes.
type midiOut struct {
	client

	mu        sync.Mutex
	connected bool
	handle    hMidiOut
}

// NewOutput creates the WinMM output backend.
func NewOutput(opts *contracts.ClientOptions, reporter *report.Reporter) (contracts.MIDIOut, error) {
	c, err := newClient(opts, reporter)
	if err != nil {
		return nil, err
	}
	return &midiOut{client: c}, nil
}

func (m *midiOut) PortCount() int { return outputDeviceCount() }

func (m *midiOut) PortName(port int) string {
	name, ok := outputDeviceName(port)
	if !ok {
		m.reporter.Report(contracts.Warning, "WinMM output: getPortName: invalid port number")
		return ""
	}
	return name
}

func (m *midiOut) OpenPort(port int, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return m.reporter.Report(contracts.Warning, "WinMM output: openPort: a valid connection already exists")
	}

	nDevices := outputDeviceCount()
	if nDevices == 0 {
		return m.reporter.Report(contracts.NoDevicesFound, "WinMM output: openPort: no MIDI output devices found")
	}
	if port < 0 || port >= nDevices {
		return m.reporter.Report(contracts.InvalidParameter, "WinMM output: openPort: invalid port number")
	}

	r0, _, err := procMidiOutOpen.Call(
		uintptr(unsafe.Pointer(&m.handle)),
		uintptr(port),
		0,
		0,
		uintptr(callbackNull),
	)
	if r0 != 0 {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("WinMM output: openPort: error opening MIDI output port: %v", err))
	}

	m.connected = true
	m.logger.Info("MIDI output port opened", m.logger.Field().Int("port", port))
	return nil
}

// OpenVirtualPort fails softly: WinMM has no virtual ports.
func (m *midiOut) OpenVirtualPort(string) error {
	return m.reporter.Report(contracts.Warning, "WinMM output: openVirtualPort: virtual ports are not supported on Windows")
}

func (m *midiOut) ClosePort() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return
	}
	procMidiOutReset.Call(uintptr(m.handle))
	procMidiOutClose.Call(uintptr(m.handle))
	m.handle = 0
	m.connected = false
	m.logger.Info("MIDI output port closed")
}

func (m *midiOut) IsPortOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

func (m *midiOut) Send(message []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return m.reporter.Report(contracts.Warning, "WinMM output: sendMessage: no open port")
	}
	if len(message) == 0 {
		return m.reporter.Report(contracts.Warning, "WinMM output: sendMessage: empty message")
	}
	if len(message) > 3 {
		return m.reporter.Report(contracts.Warning, "WinMM output: sendMessage: long messages are not supported by this backend")
	}

	var packed uintptr
	for i, b := range message {
		packed |= uintptr(b) << (8 * i)
	}
	if r0, _, err := procMidiOutShortMsg.Call(uintptr(m.handle), packed); r0 != 0 {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("WinMM output: sendMessage: %v", err))
	}
	return nil
}
