package midi

import (
	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// applyDefaultOptions sets default values for ClientOptions if not
// explicitly provided.
func applyDefaultOptions(opts ...contracts.Option) contracts.ClientOptions {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.ClientName == "" {
		options.ClientName = "Go MIDI Client"
	}
	if !options.QueueCapacitySet {
		options.QueueCapacity = contracts.DefaultQueueCapacity
	}
	if options.QueueCapacity < 0 {
		options.QueueCapacity = 0
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options
}
