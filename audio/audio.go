// Package audio abstracts microphone capture. Platform backends deliver
// fixed-size chunks of 16-bit mono PCM to a callback; a fake backend
// replays a WAV file for headless runs and tests.
package audio

const WAVHeaderSize = 44

// DataCallback receives one chunk of raw PCM. data is only valid for the
// duration of the call; implementations that keep it must copy.
type DataCallback func(data []byte, frameCount uint32)

type CaptureConfig struct {
	SampleRate   uint32
	Channels     uint32
	BufferFrames uint32 // frames per chunk delivered to the callback
}

type DeviceInfo struct {
	ID   string // opaque platform-specific identifier
	Name string
}

type Context interface {
	Devices() ([]DeviceInfo, error)
	NewCapture(device *DeviceInfo, config CaptureConfig) (CaptureDevice, error)
	Close()
}

type CaptureDevice interface {
	Start() error
	Stop()
	Close()
	SetCallback(cb DataCallback)
	ClearCallback()
	DeviceName() string
}
