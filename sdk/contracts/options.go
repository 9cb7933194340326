package contracts

// DefaultQueueCapacity is the queue size used when none is configured.
const DefaultQueueCapacity = 100

// ClientOptions defines the configuration options for a MIDI client.
type ClientOptions struct {
	Logger        Logger        // Logger for the default error sink and diagnostics.
	LogLevel      LogLevel      // Level of logging to use.
	API           API           // Preferred native subsystem; APIUnspecified tries each compiled backend in order.
	ClientName    string        // Name the native subsystem shows for this client.
	QueueCapacity int           // Input queue capacity; 0 means callback-only, no buffering.
	ErrorCallback ErrorCallback // Optional sink registered at construction.

	// QueueCapacitySet distinguishes an explicit 0 from the zero value,
	// since 0 is a meaningful capacity.
	QueueCapacitySet bool
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the MIDI client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the MIDI client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithAPI pins the client to one native subsystem. If that backend is not
// available the client stays unbound rather than falling back.
func WithAPI(api API) Option {
	return func(opts *ClientOptions) {
		opts.API = api
	}
}

// WithClientName sets the name the native subsystem displays for this client.
func WithClientName(name string) Option {
	return func(opts *ClientOptions) {
		opts.ClientName = name
	}
}

// WithQueueCapacity sets the input queue capacity. Zero disables buffering
// entirely: only a registered callback can observe messages.
func WithQueueCapacity(n int) Option {
	return func(opts *ClientOptions) {
		opts.QueueCapacity = n
		opts.QueueCapacitySet = true
	}
}

// WithErrorCallback registers the error sink at construction time, so even
// the construction report itself is delivered to it.
func WithErrorCallback(cb ErrorCallback) Option {
	return func(opts *ClientOptions) {
		opts.ErrorCallback = cb
	}
}
