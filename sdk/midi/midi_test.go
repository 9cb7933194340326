package midi

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

type reportLog struct {
	kinds []contracts.ErrorKind
	texts []string
}

func (r *reportLog) record(kind contracts.ErrorKind, text string) {
	r.kinds = append(r.kinds, kind)
	r.texts = append(r.texts, text)
}

// The Dummy API has no initializer anywhere, so it always produces an
// unbound facade.
func newUnboundIn(t *testing.T) (*In, *reportLog) {
	t.Helper()
	rl := &reportLog{}
	in := NewIn(
		contracts.WithAPI(contracts.APIDummy),
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithErrorCallback(rl.record),
	)
	require.NotNil(t, in)
	return in, rl
}

func TestUnboundInReportsOnceAtConstruction(t *testing.T) {
	_, rl := newUnboundIn(t)
	require.Len(t, rl.kinds, 1)
	assert.Equal(t, contracts.Warning, rl.kinds[0])
}

func TestUnboundInOperationsAreNeutralNoOps(t *testing.T) {
	in, rl := newUnboundIn(t)
	constructionReports := len(rl.kinds)

	assert.Equal(t, contracts.APIUnspecified, in.API())
	assert.Equal(t, 0, in.PortCount())
	assert.Equal(t, "", in.PortName(0))
	assert.Empty(t, in.PortNames())
	assert.NoError(t, in.OpenPort(0, "in"))
	assert.NoError(t, in.OpenVirtualPort("virtual"))
	assert.False(t, in.IsPortOpen())
	assert.NoError(t, in.SetCallback(func(float64, []byte, any) {}, nil))
	assert.NoError(t, in.CancelCallback())
	in.IgnoreTypes(false, false, false)
	in.SetClientName("renamed")
	in.SetPortName("renamed")
	assert.False(t, in.HasMessage())
	assert.True(t, in.Message().Empty())

	// An unbound instance is reported at construction, never per call.
	assert.Len(t, rl.kinds, constructionReports)
}

func TestUnboundInCloseIsIdempotent(t *testing.T) {
	in, rl := newUnboundIn(t)
	constructionReports := len(rl.kinds)

	in.ClosePort()
	in.ClosePort()
	assert.False(t, in.IsPortOpen())
	assert.Len(t, rl.kinds, constructionReports)
}

func TestUnboundOutOperationsAreNeutralNoOps(t *testing.T) {
	rl := &reportLog{}
	out := NewOut(
		contracts.WithAPI(contracts.APIDummy),
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithErrorCallback(rl.record),
	)
	require.NotNil(t, out)
	require.Len(t, rl.kinds, 1)

	assert.Equal(t, contracts.APIUnspecified, out.API())
	assert.Equal(t, 0, out.PortCount())
	assert.Equal(t, "", out.PortName(2))
	assert.NoError(t, out.Send([]byte{0x90, 60, 100}))
	assert.False(t, out.IsPortOpen())
	out.ClosePort()
	out.ClosePort()

	assert.Len(t, rl.kinds, 1)
}

func TestConstructorFailureIsReportedOnce(t *testing.T) {
	failure := &contracts.MIDIError{Kind: contracts.DriverError, Text: "subsystem unavailable"}
	backendInitializers[contracts.APIDummy] = initializers{
		input: func(*contracts.ClientOptions, *report.Reporter) (contracts.MIDIIn, error) {
			return nil, failure
		},
		output: func(*contracts.ClientOptions, *report.Reporter) (contracts.MIDIOut, error) {
			return nil, failure
		},
	}
	defer delete(backendInitializers, contracts.APIDummy)

	rl := &reportLog{}
	opts := []contracts.Option{
		contracts.WithAPI(contracts.APIDummy),
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithErrorCallback(rl.record),
	}

	in := NewIn(opts...)
	require.NotNil(t, in)
	require.Len(t, rl.kinds, 1, "constructor failure must surface as exactly one report")
	assert.Equal(t, contracts.Warning, rl.kinds[0])
	assert.Contains(t, rl.texts[0], "subsystem unavailable")

	out := NewOut(opts...)
	require.NotNil(t, out)
	assert.Len(t, rl.kinds, 2)
}

func TestCompiledAPIsMatchPlatform(t *testing.T) {
	apis := CompiledAPIs()
	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, []contracts.API{contracts.APICoreMIDI}, apis)
	case "linux":
		assert.Equal(t, []contracts.API{contracts.APIALSA}, apis)
	case "windows":
		assert.Equal(t, []contracts.API{contracts.APIWinMM}, apis)
	default:
		assert.Empty(t, apis)
	}
}

func TestDefaultOptions(t *testing.T) {
	options := applyDefaultOptions()
	assert.NotNil(t, options.Logger)
	assert.Equal(t, "Go MIDI Client", options.ClientName)
	assert.Equal(t, contracts.DefaultQueueCapacity, options.QueueCapacity)
	assert.Equal(t, contracts.APIUnspecified, options.API)
}

func TestExplicitZeroQueueCapacityIsKept(t *testing.T) {
	options := applyDefaultOptions(contracts.WithQueueCapacity(0))
	assert.Equal(t, 0, options.QueueCapacity)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version())
}
