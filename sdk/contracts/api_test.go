package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPINames(t *testing.T) {
	assert.Equal(t, "core", APICoreMIDI.Name())
	assert.Equal(t, "alsa", APIALSA.Name())
	assert.Equal(t, "winmm", APIWinMM.Name())
	assert.Equal(t, "dummy", APIDummy.Name())
	assert.Equal(t, "", APIUnspecified.Name())
}

func TestAPIByNameRoundTrip(t *testing.T) {
	for _, api := range []API{APICoreMIDI, APIALSA, APIWinMM, APIDummy} {
		assert.Equal(t, api, APIByName(api.Name()))
	}
}

func TestAPIByNameUnknown(t *testing.T) {
	assert.Equal(t, APIUnspecified, APIByName("jack"))
	assert.Equal(t, APIUnspecified, APIByName(""))
}

func TestAPIDisplayName(t *testing.T) {
	assert.Equal(t, "CoreMIDI", APICoreMIDI.DisplayName())
	assert.Equal(t, "Unknown", API(99).DisplayName())
}
