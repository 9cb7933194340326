package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

func TestReportReturnsTheDeliveredError(t *testing.T) {
	r := New(logger.NewNopLogger())
	err := r.Report(contracts.InvalidParameter, "port 9 is out of range")
	require.NotNil(t, err)
	assert.Equal(t, contracts.InvalidParameter, err.Kind)
	assert.EqualError(t, err, "port 9 is out of range")
}

func TestCallbackReplacesTheLoggerSink(t *testing.T) {
	r := New(logger.NewNopLogger())

	var gotKind contracts.ErrorKind
	var gotText string
	calls := 0
	r.SetCallback(func(kind contracts.ErrorKind, text string) {
		gotKind = kind
		gotText = text
		calls++
	})

	r.Report(contracts.DriverError, "device vanished")
	assert.Equal(t, 1, calls)
	assert.Equal(t, contracts.DriverError, gotKind)
	assert.Equal(t, "device vanished", gotText)
}

func TestNilCallbackRestoresTheLoggerSink(t *testing.T) {
	r := New(logger.NewNopLogger())

	calls := 0
	r.SetCallback(func(contracts.ErrorKind, string) { calls++ })
	r.Report(contracts.Warning, "first")
	r.SetCallback(nil)
	r.Report(contracts.Warning, "second")

	assert.Equal(t, 1, calls)
}

func TestEveryKindRoutesWithoutPanicking(t *testing.T) {
	r := New(logger.NewNopLogger())
	for _, kind := range []contracts.ErrorKind{
		contracts.Warning,
		contracts.DebugWarning,
		contracts.DriverError,
		contracts.NoDevicesFound,
		contracts.InvalidParameter,
	} {
		assert.NotNil(t, r.Report(kind, "probe"))
	}
}
