package contracts

// API identifies the native sound subsystem a client instance is bound to.
// The value is fixed for the lifetime of a backend instance.
type API int

const (
	// APIUnspecified lets the facade pick the first compiled-in backend.
	APIUnspecified API = iota
	// APICoreMIDI is the macOS CoreMIDI subsystem.
	APICoreMIDI
	// APIALSA is the Linux ALSA rawmidi subsystem.
	APIALSA
	// APIWinMM is the Windows Multimedia subsystem.
	APIWinMM
	// APIDummy never binds; useful to force an unbound client.
	APIDummy
)

// Name returns the short, stable identifier of the API.
func (a API) Name() string {
	switch a {
	case APICoreMIDI:
		return "core"
	case APIALSA:
		return "alsa"
	case APIWinMM:
		return "winmm"
	case APIDummy:
		return "dummy"
	default:
		return ""
	}
}

// DisplayName returns a human-readable name for the API.
func (a API) DisplayName() string {
	switch a {
	case APICoreMIDI:
		return "CoreMIDI"
	case APIALSA:
		return "ALSA"
	case APIWinMM:
		return "Windows MultiMedia"
	case APIDummy:
		return "Dummy"
	default:
		return "Unknown"
	}
}

// APIByName resolves a short identifier back to an API tag.
// Unknown names resolve to APIUnspecified.
func APIByName(name string) API {
	for _, a := range []API{APICoreMIDI, APIALSA, APIWinMM, APIDummy} {
		if a.Name() == name {
			return a
		}
	}
	return APIUnspecified
}
