//go:build linux

// Package midialsa implements the MIDI capability contract against the
// ALSA rawmidi layer. Ports are the kernel's /dev/snd/midiC*D* nodes; the
// input side runs one dedicated reader goroutine per open port, so unlike
// the callback-driven backends, closing the port joins the reader and
// guarantees no delivery happens afterwards.
package midialsa

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

const devSnd = "/dev/snd"

// rawDevice is one rawmidi node. The same node serves both directions;
// whether a direction actually exists surfaces as an open error.
type rawDevice struct {
	card, dev int
	path      string
	name      string
}

// scanDevices enumerates the rawmidi nodes currently present, in stable
// (card, device) order. Called on every enumeration; the node list changes
// under hot-plug.
func scanDevices() ([]rawDevice, error) {
	entries, err := os.ReadDir(devSnd)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", devSnd, err)
	}

	var devices []rawDevice
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		var card, dev int
		if n, _ := fmt.Sscanf(entry.Name(), "midiC%dD%d", &card, &dev); n != 2 {
			continue
		}
		devices = append(devices, rawDevice{
			card: card,
			dev:  dev,
			path: devSnd + "/" + entry.Name(),
			name: deviceName(card, dev),
		})
	}
	sort.Slice(devices, func(i, j int) bool {
		if devices[i].card != devices[j].card {
			return devices[i].card < devices[j].card
		}
		return devices[i].dev < devices[j].dev
	})
	return devices, nil
}

// deviceName builds a display name from the sound card id, falling back to
// the hardware address alone when the card directory is unreadable.
func deviceName(card, dev int) string {
	addr := fmt.Sprintf("hw:%d,%d", card, dev)
	id, err := os.ReadFile(fmt.Sprintf("/proc/asound/card%d/id", card))
	if err != nil {
		return addr
	}
	return fmt.Sprintf("%s %s", strings.TrimSpace(string(id)), addr)
}

// client carries what both directions share.
type client struct {
	logger   contracts.Logger
	reporter *report.Reporter
	epoch    time.Time
}

// newClient returns its error unreported: the facade owns the single
// construction report.
func newClient(opts *contracts.ClientOptions, reporter *report.Reporter) (client, error) {
	if _, err := os.Stat(devSnd); err != nil {
		return client{}, &contracts.MIDIError{
			Kind: contracts.DriverError,
			Text: fmt.Sprintf("ALSA: sound subsystem unavailable: %v", err),
		}
	}
	return client{
		logger:   opts.Logger,
		reporter: reporter,
		epoch:    time.Now(),
	}, nil
}

func (c *client) API() contracts.API { return contracts.APIALSA }

// now returns seconds since backend creation; rawmidi carries no driver
// timestamps.
func (c *client) now() float64 {
	return time.Since(c.epoch).Seconds()
}

// SetClientName is a no-op: rawmidi has no client identity to rename.
func (c *client) SetClientName(string) {}

// SetPortName is a no-op: rawmidi port names belong to the hardware.
func (c *client) SetPortName(string) {}

func (c *client) SetErrorCallback(cb contracts.ErrorCallback) {
	c.reporter.SetCallback(cb)
}

func (c *client) portCount() int {
	devices, err := scanDevices()
	if err != nil {
		c.reporter.Report(contracts.DriverError, fmt.Sprintf("ALSA: %v", err))
		return 0
	}
	return len(devices)
}

func (c *client) portName(direction string, port int) string {
	devices, err := scanDevices()
	if err != nil || port < 0 || port >= len(devices) {
		c.reporter.Report(contracts.Warning,
			fmt.Sprintf("ALSA %s: getPortName: invalid port number", direction))
		return ""
	}
	return devices[port].name
}
