//go:build darwin

// Package midicore implements the MIDI capability contract against the
// macOS CoreMIDI subsystem. Input delivery happens on a CoreMIDI-owned
// execution context, outside the caller's goroutines.
package midicore

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/youpy/go-coremidi"

	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// internalPortConnection is the part of a CoreMIDI port connection the
// close path needs.
type internalPortConnection interface {
	Disconnect()
}

// client carries what both directions share: the CoreMIDI client handle,
// the error sink and the timestamp origin.
type client struct {
	logger   contracts.Logger
	reporter *report.Reporter
	client   coremidi.Client
	epoch    time.Time
}

// newClient returns its error unreported: the facade owns the single
// construction report.
func newClient(opts *contracts.ClientOptions, reporter *report.Reporter) (client, error) {
	c, err := coremidi.NewClient(opts.ClientName)
	if err != nil {
		return client{}, &contracts.MIDIError{
			Kind: contracts.DriverError,
			Text: fmt.Sprintf("CoreMIDI: error creating MIDI client: %v", err),
		}
	}
	opts.Logger.Debug("CoreMIDI client created",
		opts.Logger.Field().String("clientName", opts.ClientName))
	return client{
		logger:   opts.Logger,
		reporter: reporter,
		client:   c,
		epoch:    time.Now(),
	}, nil
}

// now returns seconds since this backend instance was created. CoreMIDI
// packet timestamps are not exposed by the binding, so the origin is the
// backend itself, which keeps timestamps monotonic per instance.
func (c *client) now() float64 {
	return time.Since(c.epoch).Seconds()
}

func (c *client) API() contracts.API { return contracts.APICoreMIDI }

// SetClientName is a no-op: CoreMIDI does not allow renaming a client
// after creation.
func (c *client) SetClientName(string) {}

// SetPortName is a no-op: the CoreMIDI binding does not expose endpoint
// property writes.
func (c *client) SetPortName(string) {}

func (c *client) SetErrorCallback(cb contracts.ErrorCallback) {
	c.reporter.SetCallback(cb)
}

func sourceCount(rep *report.Reporter) int {
	sources, err := coremidi.AllSources()
	if err != nil {
		rep.Report(contracts.DriverError, fmt.Sprintf("CoreMIDI: error listing sources: %v", err))
		return 0
	}
	return len(sources)
}

func destinationCount(rep *report.Reporter) int {
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		rep.Report(contracts.DriverError, fmt.Sprintf("CoreMIDI: error listing destinations: %v", err))
		return 0
	}
	return len(destinations)
}

// connectionState is the open/close bookkeeping shared by both directions.
// The connected flag is also read from the CoreMIDI delivery context, so
// it is atomic.
type connectionState struct {
	mu        sync.Mutex
	connected atomic.Bool
}

func (s *connectionState) IsPortOpen() bool { return s.connected.Load() }
