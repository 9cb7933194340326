//go:build windows

// Package midiwinmm implements the MIDI capability contract against the
// Windows Multimedia subsystem (winmm.dll). Input delivery happens on a
// thread owned by the multimedia subsystem.
package midiwinmm

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// Handle types for MIDI devices.
type (
	hMidiIn  windows.Handle
	hMidiOut windows.Handle
)

// Callback flags.
const (
	callbackFunction = 0x00030000 // callback parameter is a function
	callbackNull     = 0x00000000 // no callback
)

// Input callback message types.
const (
	mimOpen      = 0x3C1
	mimClose     = 0x3C2
	mimData      = 0x3C3
	mimLongData  = 0x3C4
	mimError     = 0x3C5
	mimLongError = 0x3C6
	mimMoreData  = 0x3CC
)

// midiInCaps mirrors MIDIINCAPSW.
type midiInCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	dwSupport      uint32
}

// midiOutCaps mirrors MIDIOUTCAPSW.
type midiOutCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	wTechnology    uint16
	wVoices        uint16
	wNotes         uint16
	wChannelMask   uint16
	dwSupport      uint32
}

// Lazy-loaded winmm.dll entry points.
var (
	winmm                 = windows.NewLazySystemDLL("winmm.dll")
	procMidiInGetNumDevs  = winmm.NewProc("midiInGetNumDevs")
	procMidiInGetDevCaps  = winmm.NewProc("midiInGetDevCapsW")
	procMidiInOpen        = winmm.NewProc("midiInOpen")
	procMidiInStart       = winmm.NewProc("midiInStart")
	procMidiInStop        = winmm.NewProc("midiInStop")
	procMidiInClose       = winmm.NewProc("midiInClose")
	procMidiOutGetNumDevs = winmm.NewProc("midiOutGetNumDevs")
	procMidiOutGetDevCaps = winmm.NewProc("midiOutGetDevCapsW")
	procMidiOutOpen       = winmm.NewProc("midiOutOpen")
	procMidiOutShortMsg   = winmm.NewProc("midiOutShortMsg")
	procMidiOutReset      = winmm.NewProc("midiOutReset")
	procMidiOutClose      = winmm.NewProc("midiOutClose")
)

// client carries what both directions share.
type client struct {
	logger   contracts.Logger
	reporter *report.Reporter
	epoch    time.Time
}

// newClient returns its error unreported: the facade owns the single
// construction report.
func newClient(opts *contracts.ClientOptions, reporter *report.Reporter) (client, error) {
	if err := winmm.Load(); err != nil {
		return client{}, &contracts.MIDIError{
			Kind: contracts.DriverError,
			Text: fmt.Sprintf("WinMM: error loading winmm.dll: %v", err),
		}
	}
	return client{
		logger:   opts.Logger,
		reporter: reporter,
		epoch:    time.Now(),
	}, nil
}

func (c *client) API() contracts.API { return contracts.APIWinMM }

// SetClientName is a no-op: WinMM has no client identity.
func (c *client) SetClientName(string) {}

// SetPortName is a no-op: WinMM port names belong to the driver.
func (c *client) SetPortName(string) {}

func (c *client) SetErrorCallback(cb contracts.ErrorCallback) {
	c.reporter.SetCallback(cb)
}

func inputDeviceCount() int {
	r0, _, _ := procMidiInGetNumDevs.Call()
	return int(r0)
}

func outputDeviceCount() int {
	r0, _, _ := procMidiOutGetNumDevs.Call()
	return int(r0)
}

func inputDeviceName(port int) (string, bool) {
	if port < 0 || port >= inputDeviceCount() {
		return "", false
	}
	var caps midiInCaps
	r0, _, _ := procMidiInGetDevCaps.Call(
		uintptr(port),
		uintptr(unsafe.Pointer(&caps)),
		unsafe.Sizeof(caps),
	)
	if r0 != 0 {
		return "", false
	}
	return windows.UTF16ToString(caps.szPname[:]), true
}

func outputDeviceName(port int) (string, bool) {
	if port < 0 || port >= outputDeviceCount() {
		return "", false
	}
	var caps midiOutCaps
	r0, _, _ := procMidiOutGetDevCaps.Call(
		uintptr(port),
		uintptr(unsafe.Pointer(&caps)),
		unsafe.Sizeof(caps),
	)
	if r0 != 0 {
		return "", false
	}
	return windows.UTF16ToString(caps.szPname[:]), true
}
