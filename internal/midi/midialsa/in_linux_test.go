//go:build linux

package midialsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/leandrodaf/rtmidi/internal/logger"
	"github.com/leandrodaf/rtmidi/internal/midi/dispatch"
	"github.com/leandrodaf/rtmidi/internal/report"
	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

func TestReaderFailureIsReportedImmediately(t *testing.T) {
	var kinds []contracts.ErrorKind
	rep := report.New(logger.NewNopLogger())
	rep.SetCallback(func(kind contracts.ErrorKind, _ string) {
		kinds = append(kinds, kind)
	})

	// A directory descriptor polls ready but fails every read, standing in
	// for a device node that died mid-session.
	fd, err := unix.Open(t.TempDir(), unix.O_RDONLY|unix.O_DIRECTORY, 0)
	require.NoError(t, err)
	defer unix.Close(fd)

	m := &midiIn{
		client:   client{logger: logger.NewNopLogger(), reporter: rep},
		dispatch: dispatch.New(8, rep),
		fd:       -1,
	}
	stop := make(chan struct{})
	m.wg.Add(1)
	m.readLoop(fd, stop)

	require.Error(t, m.readErr)
	assert.Equal(t, []contracts.ErrorKind{contracts.DriverError}, kinds)
}
