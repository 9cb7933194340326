//go:build darwin

package midicore

import (
	"fmt"

	"github.com/youpy/go-coremidi"

	"github.com/leandrodaf/rtmidi/internal/midi/dispatch"
	"github.com/leandrodaf/rtmidi/internal/midi/parser"
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// midiIn is the CoreMIDI input backend. Incoming packets are translated on
// the driver's delivery context and handed to the dispatcher.
type midiIn struct {
	client
	connectionState
	dispatch *dispatch.Input
	stream   *parser.Parser

	port    coremidi.InputPort
	conn    internalPortConnection
	virtual *coremidi.Destination
}

// NewInput creates the CoreMIDI input backend.
func NewInput(opts *contracts.ClientOptions, reporter *report.Reporter) (contracts.MIDIIn, error) {
	c, err := newClient(opts, reporter)
	if err != nil {
		return nil, err
	}
	return newMidiIn(c, opts.QueueCapacity, reporter), nil
}

func newMidiIn(c client, capacity int, reporter *report.Reporter) *midiIn {
	m := &midiIn{
		client:   c,
		dispatch: dispatch.New(capacity, reporter),
	}
	m.stream = parser.New(func(message []byte) {
		m.dispatch.Deliver(m.now(), message)
	})
	return m
}

func (m *midiIn) PortCount() int {
	return sourceCount(m.reporter)
}

func (m *midiIn) PortName(port int) string {
	sources, err := coremidi.AllSources()
	if err != nil || port < 0 || port >= len(sources) {
		m.reporter.Report(contracts.Warning, "CoreMIDI input: getPortName: invalid port number")
		return ""
	}
	return sources[port].Name()
}

func (m *midiIn) OpenPort(port int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected.Load() {
		return m.reporter.Report(contracts.Warning, "CoreMIDI input: openPort: a valid connection already exists")
	}

	sources, err := coremidi.AllSources()
	if err != nil {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("CoreMIDI input: openPort: error listing sources: %v", err))
	}
	if len(sources) == 0 {
		return m.reporter.Report(contracts.NoDevicesFound, "CoreMIDI input: openPort: no MIDI input sources found")
	}
	if port < 0 || port >= len(sources) {
		return m.reporter.Report(contracts.InvalidParameter, "CoreMIDI input: openPort: invalid port number")
	}

	inPort, err := coremidi.NewInputPort(m.client.client, name, m.handlePacket)
	if err != nil {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("CoreMIDI input: openPort: error creating input port: %v", err))
	}

	conn, err := inPort.Connect(sources[port])
	if err != nil {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("CoreMIDI input: openPort: error connecting to source: %v", err))
	}

	m.port = inPort
	m.conn = conn
	m.connected.Store(true)
	m.logger.Info("MIDI input port opened",
		m.logger.Field().Int("port", port),
		m.logger.Field().String("source", sources[port].Name()))
	return nil
}

// OpenVirtualPort creates a virtual destination other applications can
// send to. It feeds the same delivery path as a real connection.
func (m *midiIn) OpenVirtualPort(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected.Load() {
		return m.reporter.Report(contracts.Warning, "CoreMIDI input: openVirtualPort: a valid connection already exists")
	}

	dest, err := coremidi.NewDestination(m.client.client, name, m.handlePacket)
	if err != nil {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("CoreMIDI input: openVirtualPort: error creating virtual destination: %v", err))
	}

	m.virtual = &dest
	m.connected.Store(true)
	m.logger.Info("virtual MIDI input port opened", m.logger.Field().String("name", name))
	return nil
}

func (m *midiIn) ClosePort() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected.Load() {
		return
	}
	m.connected.Store(false)
	if m.conn != nil {
		m.conn.Disconnect()
		m.conn = nil
	}
	m.virtual = nil
	m.logger.Info("MIDI input port closed")
}

// handlePacket runs on the CoreMIDI delivery context. A packet can carry
// several coalesced same-timestamp messages, and sysex data may span
// packets whose continuations start with a data byte, so the bytes go
// through the stream parser rather than out as one message.
func (m *midiIn) handlePacket(_ coremidi.Source, packet coremidi.Packet) {
	if !m.connected.Load() || len(packet.Data) == 0 {
		return
	}
	m.stream.Feed(packet.Data)
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
