//go:build darwin

package midicore

import (
	"fmt"

	"github.com/youpy/go-coremidi"

	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// midiOut is the CoreMIDI output backend. A real connection sends through
// an output port to the chosen destination; a virtual port publishes a
// source other applications can listen to.
type midiOut struct {
	client
	connectionState

	port    coremidi.OutputPort
	dest    *coremidi.Destination
	virtual *coremidi.Source
}

// NewOutput creates the CoreMIDI output backend.
func NewOutput(opts *contracts.ClientOptions, reporter *report.Reporter) (contracts.MIDIOut, error) {
	c, err := newClient(opts, reporter)
	if err != nil {
		return nil, err
	}
	return &midiOut{client: c}, nil
}

func (m *midiOut) PortCount() int {
	return destinationCount(m.reporter)
}

func (m *midiOut) PortName(port int) string {
	destinations, err := coremidi.AllDestinations()
	if err != nil || port < 0 || port >= len(destinations) {
		m.reporter.Report(contracts.Warning, "CoreMIDI output: getPortName: invalid port number")
		return ""
	}
	return destinations[port].Name()
}

func (m *midiOut) OpenPort(port int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected.Load() {
		return m.reporter.Report(contracts.Warning, "CoreMIDI output: openPort: a valid connection already exists")
	}

	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("CoreMIDI output: openPort: error listing destinations: %v", err))
	}
	if len(destinations) == 0 {
		return m.reporter.Report(contracts.NoDevicesFound, "CoreMIDI output: openPort: no MIDI output destinations found")
	}
	if port < 0 || port >= len(destinations) {
		return m.reporter.Report(contracts.InvalidParameter, "CoreMIDI output: openPort: invalid port number")
	}

	outPort, err := coremidi.NewOutputPort(m.client.client, name)
	if err != nil {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("CoreMIDI output: openPort: error creating output port: %v", err))
	}

	dest := destinations[port]
	m.port = outPort
	m.dest = &dest
	m.connected.Store(true)
	m.logger.Info("MIDI output port opened",
		m.logger.Field().Int("port", port),
		m.logger.Field().String("destination", dest.Name()))
	return nil
}

// OpenVirtualPort publishes a virtual source visible to other applications
// as an input device of theirs.
func (m *midiOut) OpenVirtualPort(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected.Load() {
		return m.reporter.Report(contracts.Warning, "CoreMIDI output: openVirtualPort: a valid connection already exists")
	}

	src, err := coremidi.NewSource(m.client.client, name)
	if err != nil {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("CoreMIDI output: openVirtualPort: error creating virtual source: %v", err))
	}

	m.virtual = &src
	m.connected.Store(true)
	m.logger.Info("virtual MIDI output port opened", m.logger.Field().String("name", name))
	return nil
}

func (m *midiOut) ClosePort() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected.Load() {
		return
	}
	m.connected.Store(false)
	m.dest = nil
	m.virtual = nil
	m.logger.Info("MIDI output port closed")
}

func (m *midiOut) Send(message []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected.Load() {
		return m.reporter.Report(contracts.Warning, "CoreMIDI output: sendMessage: no open port")
	}
	if len(message) == 0 {
		return m.reporter.Report(contracts.Warning, "CoreMIDI output: sendMessage: empty message")
	}

	packet := coremidi.NewPacket(message, 0)
	if m.virtual != nil {
		if err := packet.Received(m.virtual); err != nil {
			return m.reporter.Report(contracts.DriverError,
				fmt.Sprintf("CoreMIDI output: sendMessage: %v", err))
		}
		return nil
	}
	if err := packet.Send(&m.port, m.dest); err != nil {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("CoreMIDI output: sendMessage: %v", err))
	}
	return nil
}
