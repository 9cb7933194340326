//go:build linux

package midialsa

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sys/unix"

	"github.com/leandrodaf/rtmidi/internal/midi/dispatch"
	"github.com/leandrodaf/rtmidi/internal/midi/parser"
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// pollTimeoutMs bounds how long the reader sleeps in poll(2), which in
// turn bounds how long ClosePort waits for the join.
const pollTimeoutMs = 200

// midiIn is the ALSA rawmidi input backend.
type midiIn struct {
	client
	dispatch *dispatch.Input

	mu        sync.Mutex
	connected bool
	fd        int
	stop      chan struct{}
	wg        sync.WaitGroup
	readErr   error
}

// NewInput creates the ALSA input backend.
func NewInput(opts *contracts.ClientOptions, reporter *report.Reporter) (contracts.MIDIIn, error) {
	c, err := newClient(opts, reporter)
	if err != nil {
		return nil, err
	}
	return &midiIn{
		client:   c,
		dispatch: dispatch.New(opts.QueueCapacity, reporter),
		fd:       -1,
	}, nil
}

func (m *midiIn) PortCount() int { return m.portCount() }

func (m *midiIn) PortName(port int) string { return m.portName("input", port) }

func (m *midiIn) OpenPort(port int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return m.reporter.Report(contracts.Warning, "ALSA input: openPort: a valid connection already exists")
	}

	devices, err := scanDevices()
	if err != nil {
		return m.reporter.Report(contracts.DriverError, fmt.Sprintf("ALSA input: openPort: %v", err))
	}
	if len(devices) == 0 {
		return m.reporter.Report(contracts.NoDevicesFound, "ALSA input: openPort: no MIDI input sources found")
	}
	if port < 0 || port >= len(devices) {
		return m.reporter.Report(contracts.InvalidParameter, "ALSA input: openPort: invalid port number")
	}

	// Non-blocking so the reader can multiplex the read with the stop
	// signal through poll.
	fd, err := unix.Open(devices[port].path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return m.reporter.Report(contracts.DriverError,
			fmt.Sprintf("ALSA input: openPort: error opening %s: %v", devices[port].path, err))
	}

	m.fd = fd
	m.stop = make(chan struct{})
	m.readErr = nil
	m.wg.Add(1)
	go m.readLoop(fd, m.stop)

	m.connected = true
	m.logger.Info("MIDI input port opened",
		m.logger.Field().Int("port", port),
		m.logger.Field().String("device", devices[port].name))
	return nil
}

// OpenVirtualPort fails softly: rawmidi exposes hardware nodes only, there
// is no software endpoint to create.
func (m *midiIn) OpenVirtualPort(string) error {
	return m.reporter.Report(contracts.Warning, "ALSA input: openVirtualPort: virtual ports are not supported by the rawmidi backend")
}

// ClosePort signals the reader, joins it, then closes the descriptor. Once
// it returns no further message is delivered.
func (m *midiIn) ClosePort() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return
	}
	close(m.stop)
	m.wg.Wait()

	err := multierr.Append(m.readErr, unix.Close(m.fd))
	m.fd = -1
	m.connected = false
	if err != nil {
		m.reporter.Report(contracts.DriverError, fmt.Sprintf("ALSA input: closePort: %v", err))
		return
	}
	m.logger.Info("MIDI input port closed")
}

func (m *midiIn) IsPortOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// readLoop runs on the dedicated reader goroutine: block in poll with a
// bounded timeout, read whatever arrived, feed the stream parser.
func (m *midiIn) readLoop(fd int, stop <-chan struct{}) {
	defer m.wg.Done()

	p := parser.New(func(message []byte) {
		m.dispatch.Deliver(m.now(), message)
	})
	buf := make([]byte, 256)
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	for {
		select {
		case <-stop:
			return
		default:
		}

		fds[0].Revents = 0
		n, err := unix.Poll(fds, pollTimeoutMs)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			m.failRead(fmt.Errorf("poll: %w", err))
			return
		}
		if n == 0 {
			continue
		}

		nr, err := unix.Read(fd, buf)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
				continue
			}
			m.failRead(fmt.Errorf("read: %w", err))
			return
		}
		if nr > 0 {
			p.Feed(buf[:nr])
		}
	}
}

// failRead records the reader's terminal error and reports it right away,
// not just at close time: a device unplugged mid-session must surface even
// if the caller never closes the port. ClosePort still folds the error
// into its teardown aggregate.
func (m *midiIn) failRead(err error) {
	m.readErr = err
	m.reporter.Report(contracts.DriverError, fmt.Sprintf("ALSA input: %v", err))
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
