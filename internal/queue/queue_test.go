package queue

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

func msg(status byte, ts float64) contracts.Message {
	return contracts.Message{Bytes: []byte{status, 60, 100}, Timestamp: ts}
}

func TestPopEmptyReturnsSentinel(t *testing.T) {
	r := New(4)
	got := r.Pop()
	assert.True(t, got.Empty())
	assert.Zero(t, got.Timestamp)
}

func TestFIFOOrder(t *testing.T) {
	r := New(8)
	for i := 0; i < 5; i++ {
		r.Push(msg(0x90, float64(i)))
	}
	require.Equal(t, 5, r.Len())
	for i := 0; i < 5; i++ {
		assert.Equal(t, float64(i), r.Pop().Timestamp)
	}
	assert.True(t, r.Pop().Empty())
}

func TestOverflowEvictsOldest(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 7} {
		t.Run(fmt.Sprintf("capacity_%d", capacity), func(t *testing.T) {
			r := New(capacity)
			for i := 0; i <= capacity; i++ { // capacity+1 pushes
				r.Push(msg(0x90, float64(i)))
			}
			require.Equal(t, capacity, r.Len())
			// The survivors are the most recent ones, oldest evicted first.
			for i := 1; i <= capacity; i++ {
				assert.Equal(t, float64(i), r.Pop().Timestamp)
			}
		})
	}
}

func TestZeroCapacityBuffersNothing(t *testing.T) {
	r := New(0)
	r.Push(msg(0x90, 1.0))
	assert.Equal(t, 0, r.Len())
	assert.True(t, r.Pop().Empty())
}

func TestNegativeCapacityTreatedAsZero(t *testing.T) {
	r := New(-3)
	r.Push(msg(0x90, 1.0))
	assert.True(t, r.Pop().Empty())
}

// Capacity-2 ring, three pushes: A is evicted, polls yield B then C then
// the sentinel.
func TestCapacityTwoScenario(t *testing.T) {
	r := New(2)
	r.Push(msg(0x90, 1.0)) // A
	r.Push(msg(0x91, 2.0)) // B
	r.Push(msg(0x92, 3.0)) // C

	first := r.Pop()
	require.False(t, first.Empty())
	assert.Equal(t, 2.0, first.Timestamp)
	assert.Equal(t, byte(0x91), first.Status())

	second := r.Pop()
	assert.Equal(t, 3.0, second.Timestamp)

	assert.True(t, r.Pop().Empty())
}

func TestPushAfterDrainReusesSlots(t *testing.T) {
	r := New(2)
	r.Push(msg(0x90, 1.0))
	assert.Equal(t, 1.0, r.Pop().Timestamp)
	r.Push(msg(0x90, 2.0))
	r.Push(msg(0x90, 3.0))
	assert.Equal(t, 2.0, r.Pop().Timestamp)
	assert.Equal(t, 3.0, r.Pop().Timestamp)
}
