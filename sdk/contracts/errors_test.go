package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "WARNING", Warning.String())
	assert.Equal(t, "DEBUG_WARNING", DebugWarning.String())
	assert.Equal(t, "DRIVER_ERROR", DriverError.String())
	assert.Equal(t, "NO_DEVICES_FOUND", NoDevicesFound.String())
	assert.Equal(t, "INVALID_PARAMETER", InvalidParameter.String())
	assert.Equal(t, "UNKNOWN", ErrorKind(42).String())
}

func TestMIDIErrorIsAnError(t *testing.T) {
	var err error = &MIDIError{Kind: InvalidParameter, Text: "no such port"}
	assert.EqualError(t, err, "no such port")
}
