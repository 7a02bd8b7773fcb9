// Package beep plays a short confirmation tick when a trigger fires.
package beep

import "math"

var disabled bool

// Disable turns every Play call into a no-op; used by headless test runs.
func Disable() { disabled = true }

const (
	sampleRate = 44100

	tickFreq   = 1200
	tickVolume = 0.5
	tickDecay  = 60
)

func generateTick(sampleRate int, freq float64, duration float64, volume float64, decay float64) []int16 {
	n := int(float64(sampleRate) * duration)
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t * decay)
		samples[i] = int16(math.Sin(2*math.Pi*freq*t) * 32767 * volume * envelope)
	}
	return samples
}
