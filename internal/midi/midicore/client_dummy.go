//go:build !darwin

package midicore

import (
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// ErrUnavailable reports that CoreMIDI is not part of this build.
var ErrUnavailable = &contracts.MIDIError{
	Kind: contracts.Warning,
	Text: "CoreMIDI is only available on macOS",
}

// NewInput reports that the backend is unavailable on this platform.
func NewInput(*contracts.ClientOptions, *report.Reporter) (contracts.MIDIIn, error) {
	return nil, ErrUnavailable
}

// NewOutput reports that the backend is unavailable on this platform.
func NewOutput(*contracts.ClientOptions, *report.Reporter) (contracts.MIDIOut, error) {
	return nil, ErrUnavailable
}
