// Package monitor drives the detection pipeline: audio chunks from the
// capture device are fed to the recognizer, finalized utterances run
// through the trigger matcher, detected triggers are dispatched, and the
// annotated line is emitted and appended to the history.
package monitor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"hark/audio"
	"hark/log"
	"hark/recognizer"
	"hark/trigger"
)

type State int32

const (
	StateUninitialized State = iota
	StateReady
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Monitor owns the pipeline state. Construct with New, acquire resources
// with Init, then Run until the context is cancelled or a fatal capture
// error occurs. Resources are released exactly once on any stop path.
type Monitor struct {
	cfg    Config
	mode   trigger.Mode
	words  []string
	marker trigger.Marker

	reg  *trigger.Registry
	disp *trigger.Dispatcher

	rec     recognizer.Recognizer
	actx    audio.Context
	capture audio.CaptureDevice

	chunks  chan []byte
	dropped atomic.Uint64
	muted   atomic.Bool
	state   atomic.Int32

	histMu  sync.Mutex
	history []string

	hook func(text string, detected []string)

	partialShown bool
	releaseOnce  sync.Once
}

type Option func(*Monitor)

// WithRecognizer injects a recognizer, skipping model loading in Init.
func WithRecognizer(r recognizer.Recognizer) Option {
	return func(m *Monitor) { m.rec = r }
}

// WithCapture injects a capture device, skipping audio acquisition in Init.
func WithCapture(c audio.CaptureDevice) Option {
	return func(m *Monitor) { m.capture = c }
}

// WithAudioContext makes Init open its capture device on ctx instead of
// creating a context of its own. The monitor takes ownership and closes
// ctx on release.
func WithAudioContext(ctx audio.Context) Option {
	return func(m *Monitor) { m.actx = ctx }
}

// WithUtteranceHook registers a callback invoked after each utterance is
// processed, with the normalized text and the detected triggers.
func WithUtteranceHook(fn func(text string, detected []string)) Option {
	return func(m *Monitor) { m.hook = fn }
}

// New validates cfg and builds a Monitor in the Uninitialized state. An
// invalid mode or vocabulary is reported here, before any audio is read.
func New(cfg Config, opts ...Option) (*Monitor, error) {
	mode, words, err := cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("monitor config: %w", err)
	}

	marker := cfg.Marker
	if marker == nil {
		marker = trigger.DefaultMarker
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	m := &Monitor{
		cfg:    cfg,
		mode:   mode,
		words:  words,
		marker: marker,
		reg:    trigger.NewRegistry(),
		chunks: make(chan []byte, cfg.QueueDepth),
	}
	m.disp = trigger.NewDispatcher(m.reg, func(word string, err error) {
		log.ActionError(word, err)
	})
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Register binds an action to a trigger word. Words outside the
// vocabulary are accepted but never matched.
func (m *Monitor) Register(word string, action trigger.Action) {
	m.reg.Register(strings.ToLower(word), action)
}

// Words returns the configured vocabulary.
func (m *Monitor) Words() []string {
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out
}

func (m *Monitor) Mode() trigger.Mode { return m.mode }

func (m *Monitor) State() State { return State(m.state.Load()) }

// SetMuted suppresses dispatch while leaving transcription, annotation
// and history intact, so pause/resume keeps the recognizer warm.
func (m *Monitor) SetMuted(muted bool) { m.muted.Store(muted) }

func (m *Monitor) Muted() bool { return m.muted.Load() }

// Dropped reports audio chunks discarded because processing fell behind.
func (m *Monitor) Dropped() uint64 { return m.dropped.Load() }

// History returns a copy of the processed utterance lines, oldest first.
func (m *Monitor) History() []string {
	m.histMu.Lock()
	defer m.histMu.Unlock()
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// Init acquires the recognizer and the capture device, moving the monitor
// from Uninitialized to Ready. Failure is fatal and not retried; the
// caller may construct a fresh monitor to try again.
func (m *Monitor) Init() error {
	if m.State() != StateUninitialized {
		return fmt.Errorf("init from state %s", m.State())
	}

	if m.rec == nil {
		if m.cfg.ModelPath == "" {
			return fmt.Errorf("model path is required (set -model or VOSK_MODEL_PATH)")
		}
		rec, err := recognizer.NewVosk(m.cfg.ModelPath, m.cfg.SampleRate)
		if err != nil {
			return err
		}
		m.rec = rec
	}

	if m.capture == nil {
		if m.actx == nil {
			actx, err := audio.NewContext()
			if err != nil {
				return fmt.Errorf("audio init: %w", err)
			}
			m.actx = actx
		}
		capture, err := m.actx.NewCapture(m.cfg.Device, audio.CaptureConfig{
			SampleRate:   uint32(m.cfg.SampleRate),
			Channels:     1,
			BufferFrames: uint32(m.cfg.BufferFrames),
		})
		if err != nil {
			return fmt.Errorf("opening capture device: %w", err)
		}
		m.capture = capture
	}

	m.state.Store(int32(StateReady))
	return nil
}

// Run starts capture and processes chunks until ctx is cancelled (a clean
// stop) or capture fails to start. Utterances are matched and dispatched
// in the order the recognizer finalizes them.
func (m *Monitor) Run(ctx context.Context) error {
	if !m.state.CompareAndSwap(int32(StateReady), int32(StateRunning)) {
		return fmt.Errorf("run from state %s", m.State())
	}
	defer m.release()

	m.capture.SetCallback(m.enqueue)
	if err := m.capture.Start(); err != nil {
		return fmt.Errorf("starting capture: %w", err)
	}
	log.Info("monitoring: " + m.capture.DeviceName())

	for {
		select {
		case <-ctx.Done():
			log.Info("monitor_cancelled")
			return nil
		case chunk := <-m.chunks:
			m.process(chunk)
		}
	}
}

// Close releases resources. Safe to call on any state, any number of
// times; after Run it is a no-op.
func (m *Monitor) Close() { m.release() }

// enqueue runs on the capture thread. The queue is bounded: when
// processing falls behind, the oldest pending chunk is dropped so a slow
// action delays detection instead of aborting the run.
func (m *Monitor) enqueue(data []byte, _ uint32) {
	if len(data) == 0 {
		return
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	select {
	case m.chunks <- buf:
		return
	default:
	}
	select {
	case <-m.chunks:
		m.dropped.Add(1)
	default:
	}
	select {
	case m.chunks <- buf:
	default:
		m.dropped.Add(1)
	}
}

func (m *Monitor) process(chunk []byte) {
	if !m.rec.AcceptWaveform(chunk) {
		if m.cfg.Partials {
			m.showPartial()
		}
		return
	}

	res, err := m.rec.Result()
	if err != nil {
		log.Warnf("recognizer result: %v", err)
		return
	}
	m.handleUtterance(res.Text)
}

func (m *Monitor) showPartial() {
	p, err := m.rec.PartialResult()
	if err != nil || p.Partial == "" {
		return
	}
	line := trigger.Annotate(p.Partial, trigger.Detect(p.Partial, m.mode, m.words), m.mode, m.marker)
	fmt.Fprintf(m.cfg.Out, "\r\x1b[K… %s", line)
	m.partialShown = true
}

// handleUtterance runs the full per-utterance cycle. The detected set is
// rebuilt from scratch every call: a trigger fires at most once per
// utterance but fires again if the next utterance repeats it.
func (m *Monitor) handleUtterance(text string) {
	lower := strings.ToLower(text)
	detected := trigger.Detect(lower, m.mode, m.words)

	fired := 0
	if len(detected) > 0 && !m.muted.Load() {
		fired = m.disp.Dispatch(detected)
	}

	if m.partialShown {
		fmt.Fprint(m.cfg.Out, "\r\x1b[K")
		m.partialShown = false
	}
	fmt.Fprintln(m.cfg.Out, trigger.Annotate(lower, detected, m.mode, m.marker))

	m.histMu.Lock()
	m.history = append(m.history, lower)
	m.histMu.Unlock()

	log.UtteranceText(lower)
	if len(detected) > 0 {
		log.Detection(detected, m.mode.String(), fired)
	}
	if m.hook != nil {
		m.hook(lower, detected)
	}
}

func (m *Monitor) release() {
	m.releaseOnce.Do(func() {
		if m.capture != nil {
			m.capture.Stop()
			m.capture.ClearCallback()
			m.capture.Close()
		}
		if m.actx != nil {
			m.actx.Close()
		}
		if m.rec != nil {
			m.rec.Close()
		}
		m.state.Store(int32(StateStopped))
		if n := m.dropped.Load(); n > 0 {
			log.Warnf("dropped %d audio chunks", n)
		}
		log.Info("monitor_stopped")
	})
}
