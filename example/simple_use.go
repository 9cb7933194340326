package main

import (
	"fmt"

	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
	"github.com/leandrodaf/rtmidi/sdk/midi"
)

func main() {
	log := logger.NewZapLogger()

	in := midi.NewIn(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithClientName("simple-use"),
	)
	defer in.ClosePort()

	names := in.PortNames()
	if len(names) == 0 {
		log.Error("No MIDI input ports found")
		return
	}
	fmt.Println("Available MIDI inputs:", names)

	if err := in.OpenPort(0, "simple-use in"); err != nil {
		log.Error("Failed to open MIDI input", log.Field().Error("error", err))
		return
	}

	// Keep sysex, clock and sensing suppressed; note traffic still passes.
	in.IgnoreTypes(true, true, true)

	err := in.SetCallback(func(timestamp float64, message []byte, _ any) {
		log.Info("MIDI message",
			log.Field().Float64("timestamp", timestamp),
			log.Field().Uint8("status", message[0]),
			log.Field().Int("length", len(message)),
		)
	}, nil)
	if err != nil {
		log.Error("Failed to register callback", log.Field().Error("error", err))
		return
	}

	fmt.Println("Capturing MIDI messages... Press Ctrl+C to exit.")
	select {} // Run indefinitely
}
