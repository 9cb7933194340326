// Package midi is the entry point of the realtime MIDI SDK. It hides the
// per-platform backends behind two facades, In and Out, which expose the
// same capability contract everywhere: enumerate ports, open a real or
// virtual port, send messages, and receive messages by polling or
// callback.
//
// Construction never fails: a facade that could not bind a backend stays
// permanently unbound, reports that once through the error sink, and turns
// every operation into a harmless no-op returning the contract's neutral
// value.
package midi

const version = "1.0.0"

// Version returns the SDK version string.
func Version() string { return version }
