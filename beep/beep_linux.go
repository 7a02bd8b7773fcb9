//go:build linux

package beep

import (
	"sync"

	"github.com/jfreymuth/pulse"
)

var (
	tickSamples []int16
	soundOnce   sync.Once
)

func initSound() {
	// 200ms tail so the PulseAudio buffer fills before the stream drains
	tickSamples = generateTick(sampleRate, tickFreq, 0.2, tickVolume, tickDecay)
}

func playSamples(samples []int16) {
	if len(samples) == 0 {
		return
	}
	c, err := pulse.NewClient()
	if err != nil {
		return
	}
	defer c.Close()

	pos := 0
	reader := pulse.Int16Reader(func(buf []int16) (int, error) {
		if pos >= len(samples) {
			return 0, pulse.EndOfData
		}
		n := copy(buf, samples[pos:])
		pos += n
		return n, nil
	})
	stream, err := c.NewPlayback(reader,
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(sampleRate),
		pulse.PlaybackLatency(0.1),
	)
	if err != nil {
		return
	}
	stream.Start()
	stream.Drain()
	stream.Stop()
	stream.Close()
}

func Init() {
	soundOnce.Do(initSound)
}

// PlayDetect plays the detection tick asynchronously.
func PlayDetect() {
	if disabled {
		return
	}
	soundOnce.Do(initSound)
	go playSamples(tickSamples)
}
