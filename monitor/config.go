package monitor

import (
	"fmt"
	"io"
	"strings"

	"hark/audio"
	"hark/trigger"
)

const (
	DefaultSampleRate   = 16000
	DefaultBufferFrames = 4096

	// chunks buffered between the capture callback and the processing
	// loop before the oldest is dropped
	defaultQueueDepth = 8
)

// DefaultTriggerWords is the built-in vocabulary.
var DefaultTriggerWords = []string{
	"forward", "backward", "left", "right",
	"roll", "dash", "matrix", "attack",
	"drink", "heal", "potion", "lock",
	"enemy", "run", "stop",
}

// Config is the explicit configuration for a Monitor. There is no implicit
// environment lookup here; main assembles it from flags and env.
type Config struct {
	// ModelPath locates the recognizer model. Required unless a
	// recognizer is injected through WithRecognizer.
	ModelPath string

	// Words is the trigger vocabulary, fixed once the Monitor is
	// constructed. Empty means DefaultTriggerWords.
	Words []string

	// Mode is the matching mode name: "full" (whole words) or "partial"
	// (substrings).
	Mode string

	SampleRate   int
	BufferFrames int

	// Marker renders detected spans in emitted lines. Nil means the
	// default ANSI marker.
	Marker trigger.Marker

	// Partials echoes the in-progress hypothesis between utterance
	// boundaries (display only, no dispatch).
	Partials bool

	// Device selects the capture device; nil is the system default.
	Device *audio.DeviceInfo

	// Out receives one line per processed utterance. Nil means stdout.
	Out io.Writer

	QueueDepth int
}

func (c *Config) validate() (trigger.Mode, []string, error) {
	mode, err := trigger.ParseMode(c.Mode)
	if err != nil {
		return 0, nil, err
	}

	words := c.Words
	if len(words) == 0 {
		words = DefaultTriggerWords
	}
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			return 0, nil, fmt.Errorf("empty trigger word in vocabulary")
		}
		if strings.ContainsAny(w, " \t") {
			return 0, nil, fmt.Errorf("trigger word %q contains whitespace", w)
		}
		normalized = append(normalized, w)
	}

	if c.SampleRate == 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.SampleRate < 0 {
		return 0, nil, fmt.Errorf("invalid sample rate %d", c.SampleRate)
	}
	if c.BufferFrames == 0 {
		c.BufferFrames = DefaultBufferFrames
	}
	if c.BufferFrames < 0 {
		return 0, nil, fmt.Errorf("invalid buffer size %d", c.BufferFrames)
	}
	if c.QueueDepth == 0 {
		c.QueueDepth = defaultQueueDepth
	}

	return mode, normalized, nil
}
