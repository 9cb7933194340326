//go:build linux

package midialsa

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// midiOut is the ALSA rawmidi output backend. Sends are plain writes to
// the device node; rawmidi takes raw MIDI bytes, so no event decomposition
// is needed.
type midiOut struct {
	client

	mu        sync.Mutex
	connected bool
	fd        int
}

// NewOutput creates the ALSA output backend.
func NewOutput(opts *contracts.ClientOptions, reporter *report.Reporter) (contracts.MIDIOut, error) {
	c, err := newClient(opts, reporter)
	if err != nil {
		return nil, err
	}
	return &midiOut{client: c, fd: -1}, nil
}

func (m *midiOut) PortCount() int { return m.portCount() }

func (m *midiOut) PortName(port int) string { return m.portName("output", port) }

func (m *midiOut) OpenPort(port int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return m.reporter.Report(contracts.Warning, "ALSA output: openPort: a valid connection already exists")
	}

	devices, err := scanDevices()
	if err != nil {
		return m.reporter.Report(contracts.DriverError, fmt.Sprintf("ALSA output: openPort: %v", err))
	}
	if len(devices) == 0 {
		return m.reporter.Report(contracts.NoDevicesFound, "ALSA output: openPort: no MIDI output destinations found")
	}
	if port < 0 || port >= len(devices) {
		return m.reporter.Report(contracts.InvalidParameter, "ALSA output: openPort: invalid port number")
	}

	// Blocking descriptor: Send returns once the driver has taken the
	// bytes.
	fd, err := unix.Open(devices[port].path, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("ALSA output: openPort: error opening %s: %v", devices[port].path, err))
	}

	m.fd = fd
	m.connected = true
	m.logger.Info("MIDI output port opened",
		m.logger.Field().Int("port", port),
		m.logger.Field().String("device", devices[port].name))
	return nil
}

// OpenVirtualPort fails softly: rawmidi exposes hardware nodes only.
func (m *midiOut) OpenVirtualPort(string) error {
	return m.reporter.Report(contracts.Warning, "ALSA output: openVirtualPort: virtual ports are not supported by the rawmidi backend")
}

func (m *midiOut) ClosePort() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return
	}
	if err := unix.Close(m.fd); err != nil {
		m.reporter.Report(contracts.DriverError, fmt.Sprintf("ALSA output: closePort: %v", err))
	}
	m.fd = -1
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
		return m.reporter.Report(contracts.Warning, "ALSA output: sendMessage: no open port")
	}
	if len(message) == 0 {
		return m.reporter.Report(contracts.Warning, "ALSA output: sendMessage: empty message")
	}

	for len(message) > 0 {
		n, err := unix.Write(m.fd, message)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return m.reporter.Report(contracts.DriverError,
				fmt.Sprintf("ALSA output: sendMessage: write: %v", err))
		}
		message = message[n:]
	}
	return nil
}
