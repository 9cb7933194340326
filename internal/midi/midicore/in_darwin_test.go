//go:build darwin

package midicore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youpy/go-coremidi"

	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/internal/report"
)

func newTestInput(capacity int) *midiIn {
	rep := report.New(logger.NewNopLogger())
	m := newMidiIn(client{
		logger:   logger.NewNopLogger(),
		reporter: rep,
		epoch:    time.Now(),
	}, capacity, rep)
	m.connected.Store(true)
	return m
}

func TestCoalescedPacketIsSplitIntoMessages(t *testing.T) {
	m := newTestInput(8)
	m.IgnoreTypes(true, false, true)

	// One packet carrying a clock tick and a note-on at the same timestamp.
	m.handlePacket(coremidi.Source{}, coremidi.Packet{Data: []byte{0xF8, 0x90, 0x3C, 0x64}})

	require.True(t, m.HasMessage())
	assert.Equal(t, []byte{0xF8}, m.Message().Bytes)
	assert.Equal(t, []byte{0x90, 0x3C, 0x64}, m.Message().Bytes)
	assert.True(t, m.Message().Empty())
}

func TestSuppressedClockKeepsTheRestOfThePacket(t *testing.T) {
	m := newTestInput(8)

	m.handlePacket(coremidi.Source{}, coremidi.Packet{Data: []byte{0xF8, 0x90, 0x3C, 0x64}})

	require.True(t, m.HasMessage())
	assert.Equal(t, []byte{0x90, 0x3C, 0x64}, m.Message().Bytes)
	assert.True(t, m.Message().Empty())
}

func TestSysexSpanningPacketsIsReassembled(t *testing.T) {
	m := newTestInput(8)
	m.IgnoreTypes(false, true, true)

	m.handlePacket(coremidi.Source{}, coremidi.Packet{Data: []byte{0xF0, 0x7E, 0x01}})
	assert.False(t, m.HasMessage(), "incomplete sysex must not be delivered")
	m.handlePacket(coremidi.Source{}, coremidi.Packet{Data: []byte{0x02, 0x03, 0xF7}})

	require.True(t, m.HasMessage())
	assert.Equal(t, []byte{0xF0, 0x7E, 0x01, 0x02, 0x03, 0xF7}, m.Message().Bytes)
}

func TestPacketIgnoredAfterClose(t *testing.T) {
	m := newTestInput(8)
	m.connected.Store(false)

	m.handlePacket(coremidi.Source{}, coremidi.Packet{Data: []byte{0x90, 0x3C, 0x64}})

	assert.False(t, m.HasMessage())
}
