package audio

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// FakeContext replays the PCM payload of a WAV file through the capture
// interface, then feeds silence until stopped. Used by the -test mode and
// by monitor tests to drive the pipeline without a microphone.
type FakeContext struct {
	pcm      []byte
	realtime bool
}

func NewFakeContext(wavPath string, realtime bool) (*FakeContext, error) {
	data, err := os.ReadFile(wavPath)
	if err != nil {
		return nil, err
	}
	if len(data) < WAVHeaderSize {
		return nil, fmt.Errorf("%s: too short to be a WAV file", wavPath)
	}
	return &FakeContext{pcm: data[WAVHeaderSize:], realtime: realtime}, nil
}

// NewFakePCMContext wraps raw samples directly; tests use it to avoid
// fixture files.
func NewFakePCMContext(pcm []byte, realtime bool) *FakeContext {
	return &FakeContext{pcm: pcm, realtime: realtime}
}

func (f *FakeContext) Devices() ([]DeviceInfo, error) { return nil, nil }
func (f *FakeContext) Close()                         {}

func (f *FakeContext) NewCapture(_ *DeviceInfo, config CaptureConfig) (CaptureDevice, error) {
	chunkFrames := int(config.BufferFrames)
	if chunkFrames == 0 {
		chunkFrames = 4096
	}
	interval := time.Duration(0)
	if f.realtime && config.SampleRate > 0 {
		interval = time.Duration(chunkFrames) * time.Second / time.Duration(config.SampleRate)
	}
	return &FakeCapture{
		pcm:        f.pcm,
		chunkBytes: chunkFrames * 2, // 16-bit mono
		interval:   interval,
		audioDone:  make(chan struct{}),
	}, nil
}

type FakeCapture struct {
	pcm        []byte
	chunkBytes int
	interval   time.Duration
	audioDone  chan struct{}

	mu       sync.Mutex
	cb       DataCallback
	stopCh   chan struct{}
	feedDone chan struct{}
}

// AudioDone closes once the WAV payload is fully fed; only silence
// follows. Callers use it to trigger synthetic cancellation.
func (f *FakeCapture) AudioDone() <-chan struct{} { return f.audioDone }

func (f *FakeCapture) SetCallback(cb DataCallback) {
	f.mu.Lock()
	f.cb = cb
	f.mu.Unlock()
}

func (f *FakeCapture) ClearCallback() {
	f.mu.Lock()
	f.cb = nil
	f.mu.Unlock()
}

func (f *FakeCapture) DeviceName() string { return "fake" }

func (f *FakeCapture) loadCallback() DataCallback {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cb
}

func (f *FakeCapture) Start() error {
	f.stopCh = make(chan struct{})
	f.feedDone = make(chan struct{})

	go func() {
		defer close(f.feedDone)
		pos := 0
		silence := make([]byte, f.chunkBytes)
		finished := false

		for {
			select {
			case <-f.stopCh:
				return
			default:
			}

			cb := f.loadCallback()
			if cb == nil {
				time.Sleep(time.Millisecond)
				continue
			}

			if pos < len(f.pcm) {
				end := min(pos+f.chunkBytes, len(f.pcm))
				chunk := make([]byte, end-pos)
				copy(chunk, f.pcm[pos:end])
				cb(chunk, uint32(len(chunk)/2))
				pos = end
			} else {
				if !finished {
					finished = true
					close(f.audioDone)
				}
				cb(silence, uint32(f.chunkBytes/2))
			}

			wait := f.interval
			if wait == 0 {
				wait = time.Millisecond
			}
			select {
			case <-f.stopCh:
				return
			case <-time.After(wait):
			}
		}
	}()

	return nil
}

func (f *FakeCapture) Stop() {
	if f.stopCh == nil {
		return
	}
	select {
	case <-f.stopCh:
	default:
		close(f.stopCh)
	}
	<-f.feedDone
}

func (f *FakeCapture) Close() {}
