package recognizer

import "sync"

// Fake is a scripted recognizer for tests and headless runs. It finalizes
// the next scripted utterance after every chunksPerUtterance chunks; once
// the script is exhausted every further chunk is silence.
type Fake struct {
	mu                 sync.Mutex
	script             []string
	chunksPerUtterance int
	chunkCount         int
	next               int
	pending            string
	hasPending         bool
	partial            string
	closed             bool
}

func NewFake(chunksPerUtterance int, script ...string) *Fake {
	if chunksPerUtterance < 1 {
		chunksPerUtterance = 1
	}
	return &Fake{script: script, chunksPerUtterance: chunksPerUtterance}
}

func (f *Fake) AcceptWaveform(chunk []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.next >= len(f.script) {
		return false
	}
	f.chunkCount++
	f.partial = f.script[f.next]
	if f.chunkCount%f.chunksPerUtterance != 0 {
		return false
	}
	f.pending = f.script[f.next]
	f.hasPending = true
	f.next++
	f.partial = ""
	return true
}

func (f *Fake) Result() (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	text := ""
	if f.hasPending {
		text = f.pending
		f.hasPending = false
	}
	return Result{Text: text}, nil
}

func (f *Fake) PartialResult() (Partial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Partial{Partial: f.partial}, nil
}

func (f *Fake) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

// Closed reports whether Close was called; tests assert resource release.
func (f *Fake) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Exhausted reports whether every scripted utterance has been finalized.
func (f *Fake) Exhausted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next >= len(f.script)
}
