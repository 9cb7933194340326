package midi

import (
	"fmt"
	"runtime"

	"github.com/leandrodaf/rtmidi/internal/midi/midialsa"
	"github.com/leandrodaf/rtmidi/internal/midi/midicore"
	"github.com/leandrodaf/rtmidi/internal/midi/midiwinmm"
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// initializers are the per-API backend constructors. Backends not built
// for the current platform reject construction, which the selection loop
// treats as "try the next one". Constructors return their error without
// reporting it; the selection path owns the single construction report.
type initializers struct {
	input  func(*contracts.ClientOptions, *report.Reporter) (contracts.MIDIIn, error)
	output func(*contracts.ClientOptions, *report.Reporter) (contracts.MIDIOut, error)
}

var backendInitializers = map[contracts.API]initializers{
	contracts.APICoreMIDI: {midicore.NewInput, midicore.NewOutput},
	contracts.APIALSA:     {midialsa.NewInput, midialsa.NewOutput},
	contracts.APIWinMM:    {midiwinmm.NewInput, midiwinmm.NewOutput},
}

// apiPriority is the order tried when no API preference is given.
var apiPriority = []contracts.API{
	contracts.APICoreMIDI,
	contracts.APIALSA,
	contracts.APIWinMM,
}

var goosAPIs = map[string][]contracts.API{
	"darwin":  {contracts.APICoreMIDI},
	"linux":   {contracts.APIALSA},
	"windows": {contracts.APIWinMM},
}

// CompiledAPIs returns the native subsystems this build can bind to, in
// selection priority order.
func CompiledAPIs() []contracts.API {
	available := goosAPIs[runtime.GOOS]
	out := make([]contracts.API, len(available))
	copy(out, available)
	return out
}

// openInput binds an input backend per the selection rules: an explicit
// preference is attempted alone, otherwise each compiled API in priority
// order. Returns nil when nothing binds, after reporting once.
func openInput(opts *contracts.ClientOptions, reporter *report.Reporter) contracts.MIDIIn {
	if opts.API != contracts.APIUnspecified {
		init, ok := backendInitializers[opts.API]
		if !ok {
			reporter.Report(contracts.Warning,
				fmt.Sprintf("no compiled support for the %s API", opts.API.DisplayName()))
			return nil
		}
		backend, err := init.input(opts, reporter)
		if err != nil {
			reporter.Report(contracts.Warning,
				fmt.Sprintf("the %s API is not usable here: %v", opts.API.DisplayName(), err))
			return nil
		}
		return backend
	}

	for _, api := range apiPriority {
		backend, err := backendInitializers[api].input(opts, reporter)
		if err == nil {
			return backend
		}
	}
	reporter.Report(contracts.Warning, "no usable MIDI API found for this platform")
	return nil
}

// openOutput is the output-direction counterpart of openInput.
func openOutput(opts *contracts.ClientOptions, reporter *report.Reporter) contracts.MIDIOut {
	if opts.API != contracts.APIUnspecified {
		init, ok := backendInitializers[opts.API]
		if !ok {
			reporter.Report(contracts.Warning,
				fmt.Sprintf("no compiled support for the %s API", opts.API.DisplayName()))
			return nil
		}
		backend, err := init.output(opts, reporter)
		if err != nil {
			reporter.Report(contracts.Warning,
				fmt.Sprintf("the %s API is not usable here: %v", opts.API.DisplayName(), err))
			return nil
		}
		return backend
	}

	for _, api := range apiPriority {
		backend, err := backendInitializers[api].output(opts, reporter)
		if err == nil {
			return backend
		}
	}
	reporter.Report(contracts.Warning, "no usable MIDI API found for this platform")
	return nil
}
