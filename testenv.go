package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"hark/audio"
	"hark/beep"
	"hark/monitor"
	"hark/press"
	"hark/recognizer"
)

// runTestMode drives the full pipeline headlessly: the WAV file paces the
// capture feed, a scripted recognizer finalizes one stdin line per few
// chunks, and key presses are replaced with printed markers. The run ends
// when the WAV payload is exhausted.
func runTestMode(wavPath string, cfg monitor.Config) {
	beep.Disable()

	// One finalized utterance per stdin line.
	var script []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		script = append(script, scanner.Text())
	}

	fakeCtx, err := audio.NewFakeContext(wavPath, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading WAV: %v\n", err)
		os.Exit(1)
	}

	capture, err := fakeCtx.NewCapture(nil, audio.CaptureConfig{
		SampleRate:   uint32(cfg.SampleRate),
		Channels:     1,
		BufferFrames: uint32(cfg.BufferFrames),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating capture: %v\n", err)
		os.Exit(1)
	}
	fakeCapture := capture.(*audio.FakeCapture)

	m, err := monitor.New(cfg,
		monitor.WithRecognizer(recognizer.NewFake(4, script...)),
		monitor.WithCapture(capture),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Real key presses would leak into whatever window has focus, so test
	// mode substitutes printed markers for the default bindings.
	for word := range press.DefaultBindings() {
		w := word
		m.Register(w, func() error {
			fmt.Printf("action: %s\n", w)
			return nil
		})
	}

	if err := m.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-fakeCapture.AudioDone()
		cancel()
	}()

	if err := m.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("processed %d utterances, dropped %d chunks\n", len(m.History()), m.Dropped())
}
