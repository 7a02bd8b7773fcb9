// Package recognizer wraps the speech recognition engine behind a small
// contract: feed fixed-size chunks of 16-bit mono PCM, learn when an
// utterance boundary was finalized, and read back the decoded text.
package recognizer

// Result is the decoded output for one finalized utterance. Text may be
// empty when the engine detected a boundary but recognized no words.
type Result struct {
	Text string `json:"text"`
}

// Partial is the rolling hypothesis for the utterance in progress.
type Partial struct {
	Partial string `json:"partial"`
}

// Recognizer converts raw audio into utterance text. Implementations keep
// internal decoding state across chunks; Close releases it.
type Recognizer interface {
	// AcceptWaveform feeds one chunk and reports whether the engine
	// finalized an utterance with it.
	AcceptWaveform(chunk []byte) bool

	// Result returns the finalized utterance after AcceptWaveform
	// reported a boundary, and resets the engine for the next one.
	Result() (Result, error)

	// PartialResult returns the current in-progress hypothesis.
	PartialResult() (Partial, error)

	Close()
}
