//go:build !linux

package midialsa

import (
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// ErrUnavailable reports that the ALSA backend is not part of this build.
var ErrUnavailable = &contracts.MIDIError{
	Kind: contracts.Warning,
	Text: "ALSA is only available on Linux",
}

// NewInput reports that the backend is unavailable on this platform.
func NewInput(*contracts.ClientOptions, *report.Reporter) (contracts.MIDIIn, error) {
	return nil, ErrUnavailable
}

// NewOutput reports that the backend is unavailable on this platform.
func NewOutput(*contracts.ClientOptions, *report.Reporter) (contracts.MIDIOut, error) {
	return nil, ErrUnavailable
}
