package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

func newInput(t *testing.T, capacity int) (*Input, *[]contracts.ErrorKind) {
	t.Helper()
	reported := &[]contracts.ErrorKind{}
	rep := report.New(logger.NewNopLogger())
	rep.SetCallback(func(kind contracts.ErrorKind, _ string) {
		*reported = append(*reported, kind)
	})
	return New(capacity, rep), reported
}

func TestQueueDeliveryWithoutCallback(t *testing.T) {
	d, _ := newInput(t, 8)
	d.Deliver(1.5, []byte{0x90, 60, 100})

	require.True(t, d.HasMessage())
	msg := d.Message()
	assert.Equal(t, []byte{0x90, 60, 100}, msg.Bytes)
	assert.Equal(t, 1.5, msg.Timestamp)
	assert.False(t, d.HasMessage())
}

func TestCallbackBypassesQueue(t *testing.T) {
	d, _ := newInput(t, 8)

	var gotTS float64
	var gotMsg []byte
	var gotData any
	require.NoError(t, d.SetCallback(func(ts float64, msg []byte, userData any) {
		gotTS, gotMsg, gotData = ts, msg, userData
	}, "token"))

	d.Deliver(2.0, []byte{0xB0, 7, 127})

	assert.Equal(t, 2.0, gotTS)
	assert.Equal(t, []byte{0xB0, 7, 127}, gotMsg)
	assert.Equal(t, "token", gotData)
	assert.False(t, d.HasMessage(), "callback delivery must not queue")
}

func TestSetCallbackTwiceWarnsAndKeepsFirst(t *testing.T) {
	d, reported := newInput(t, 8)

	first := 0
	require.NoError(t, d.SetCallback(func(float64, []byte, any) { first++ }, nil))
	err := d.SetCallback(func(float64, []byte, any) { t.Fatal("second callback must not be installed") }, nil)
	require.Error(t, err)
	assert.Equal(t, []contracts.ErrorKind{contracts.Warning}, *reported)

	d.Deliver(1.0, []byte{0x90, 60, 100})
	assert.Equal(t, 1, first)
}

func TestCancelCallbackWithoutSetWarns(t *testing.T) {
	d, reported := newInput(t, 8)
	require.Error(t, d.CancelCallback())
	assert.Equal(t, []contracts.ErrorKind{contracts.Warning}, *reported)
}

func TestCancelRestoresQueueDelivery(t *testing.T) {
	d, _ := newInput(t, 8)
	require.NoError(t, d.SetCallback(func(float64, []byte, any) {}, nil))
	require.NoError(t, d.CancelCallback())

	d.Deliver(1.0, []byte{0x80, 60, 0})
	assert.True(t, d.HasMessage())
}

func TestDefaultFilterSuppressesAllThree(t *testing.T) {
	d, _ := newInput(t, 8)
	d.Deliver(1.0, []byte{0xF0, 0x41, 0xF7}) // sysex
	d.Deliver(2.0, []byte{0xF8})             // timing clock
	d.Deliver(3.0, []byte{0xFE})             // active sense
	assert.False(t, d.HasMessage())

	d.Deliver(4.0, []byte{0x90, 60, 100})
	assert.True(t, d.HasMessage())
}

func TestUnsuppressedCategoriesPassUnchanged(t *testing.T) {
	d, _ := newInput(t, 8)
	d.IgnoreTypes(false, false, false)

	sysex := []byte{0xF0, 0x7E, 0x7F, 0x06, 0x01, 0xF7}
	d.Deliver(1.0, sysex)
	d.Deliver(2.0, []byte{0xF8})
	d.Deliver(3.0, []byte{0xFE})

	assert.Equal(t, sysex, d.Message().Bytes)
	assert.Equal(t, []byte{0xF8}, d.Message().Bytes)
	assert.Equal(t, []byte{0xFE}, d.Message().Bytes)
}

func TestFilteredMessageNeverReachesCallback(t *testing.T) {
	d, _ := newInput(t, 0)
	calls := 0
	require.NoError(t, d.SetCallback(func(float64, []byte, any) { calls++ }, nil))

	d.Deliver(1.0, []byte{0xF0, 0xF7})
	d.Deliver(2.0, []byte{0x90, 60, 100})
	assert.Equal(t, 1, calls)
}

func TestZeroCapacityOnlyCallbackObservesMessages(t *testing.T) {
	d, _ := newInput(t, 0)
	d.Deliver(1.0, []byte{0x90, 60, 100})
	assert.False(t, d.HasMessage())
	assert.True(t, d.Message().Empty())
}
