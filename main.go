package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/joho/godotenv"

	"hark/audio"
	"hark/beep"
	"hark/hotkey"
	"hark/log"
	"hark/monitor"
	"hark/press"
	"hark/shutdown"
	"hark/trigger"
)

var version = "dev"

func run() {
	// .env in the working directory may carry VOSK_MODEL_PATH; load it
	// before flag defaults are read.
	godotenv.Load()

	modelFlag := flag.String("model", os.Getenv("VOSK_MODEL_PATH"), "Path to the Vosk model directory (default: VOSK_MODEL_PATH)")
	modeFlag := flag.String("mode", "full", "Matching mode: full (whole words) or partial (substrings)")
	wordsFlag := flag.String("words", "", "Comma-separated trigger vocabulary (default: built-in game words)")
	rateFlag := flag.Int("rate", monitor.DefaultSampleRate, "Capture sample rate in Hz")
	bufferFlag := flag.Int("buffer", monitor.DefaultBufferFrames, "Capture buffer size in frames")
	setupFlag := flag.Bool("setup", false, "Select microphone device (otherwise uses system default)")
	deviceFlag := flag.String("device", "", "Use named microphone device")
	plainFlag := flag.Bool("plain", false, "Mark detected triggers with >>word<< instead of color")
	markStartFlag := flag.String("mark-start", "", "ANSI sequence prepended to detected triggers (overrides the default style)")
	markResetFlag := flag.String("mark-reset", "", "ANSI sequence appended after detected triggers")
	beepFlag := flag.Bool("beep", true, "Play a tick when a trigger fires")
	copyFlag := flag.Bool("copy", false, "Copy each recognized utterance to the clipboard")
	partialsFlag := flag.Bool("partials", false, "Echo in-progress hypotheses between utterances")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	testFlag := flag.String("test", "", "Test mode: replay the given WAV file with a scripted recognizer (headless)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("hark %s\n", version)
		os.Exit(0)
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)
	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()

	if !*beepFlag {
		beep.Disable()
	}

	var marker trigger.Marker
	switch {
	case *markStartFlag != "" || *markResetFlag != "":
		marker = trigger.ANSIMarker{Start: *markStartFlag, Reset: *markResetFlag}
	case *plainFlag:
		marker = trigger.PlainMarker{}
	default:
		marker = trigger.NewStyleMarker()
	}

	var words []string
	if *wordsFlag != "" {
		for _, w := range strings.Split(*wordsFlag, ",") {
			words = append(words, strings.TrimSpace(w))
		}
	}

	cfg := monitor.Config{
		ModelPath:    *modelFlag,
		Words:        words,
		Mode:         *modeFlag,
		SampleRate:   *rateFlag,
		BufferFrames: *bufferFlag,
		Marker:       marker,
		Partials:     *partialsFlag,
	}

	if *testFlag != "" {
		runTestMode(*testFlag, cfg)
		return
	}

	var opts []monitor.Option

	// -setup and -device need the device list before the monitor opens its
	// capture, so the audio context is created here and handed over.
	if *setupFlag || *deviceFlag != "" {
		actx, err := audio.NewContext()
		if err != nil {
			log.Errorf("audio context init error: %v", err)
			fmt.Fprintf(os.Stderr, "Error initializing audio: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, monitor.WithAudioContext(actx))

		if *deviceFlag != "" {
			if devices, err := actx.Devices(); err == nil {
				for i := range devices {
					if devices[i].Name == *deviceFlag {
						cfg.Device = &devices[i]
						break
					}
				}
			}
			if cfg.Device == nil {
				fmt.Fprintf(os.Stderr, "Warning: device %q not found, using default\n", *deviceFlag)
			}
		} else {
			dev, err := audio.SelectDevice(actx)
			if err != nil {
				log.Warnf("device selection failed: %v", err)
				fmt.Fprintf(os.Stderr, "Warning: device selection failed: %v\n", err)
				fmt.Fprintln(os.Stderr, "Falling back to default device")
			}
			cfg.Device = dev
		}
	}

	if *copyFlag || *beepFlag {
		doCopy := *copyFlag
		opts = append(opts, monitor.WithUtteranceHook(func(text string, detected []string) {
			if len(detected) > 0 {
				beep.PlayDetect()
			}
			if doCopy && text != "" {
				if err := clipboard.WriteAll(text); err != nil {
					log.Warnf("clipboard copy failed: %v", err)
				}
			}
		}))
	}

	m, err := monitor.New(cfg, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for word, action := range press.DefaultBindings() {
		m.Register(word, action)
	}

	if err := m.Init(); err != nil {
		log.Errorf("monitor init error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	go beep.Init()

	hk := hotkey.New()
	if err := hk.Register(); err != nil {
		log.Warnf("hotkey register error: %v", err)
		fmt.Fprintf(os.Stderr, "Warning: pause hotkey unavailable: %v\n", err)
	} else {
		defer hk.Unregister()
		go func() {
			for range hk.Pressed() {
				muted := !m.Muted()
				m.SetMuted(muted)
				if muted {
					fmt.Println("dispatch paused (ctrl+shift+space to resume)")
					log.Info("dispatch_paused")
				} else {
					fmt.Println("dispatch resumed")
					log.Info("dispatch_resumed")
				}
			}
		}()
	}

	deviceName := "default"
	if cfg.Device != nil {
		deviceName = cfg.Device.Name
	}
	log.SessionStart(m.Mode().String(), len(m.Words()), deviceName)

	fmt.Printf("hark %s listening (mode: %s, %d triggers)\n", version, m.Mode(), len(m.Words()))
	fmt.Println("ctrl+shift+space pauses dispatch, ctrl+c quits")

	ctx, stop := shutdown.Context(context.Background())
	defer stop()

	if err := m.Run(ctx); err != nil {
		log.Errorf("monitor error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.SessionEnd(len(m.History()), m.Dropped())
	fmt.Printf("\nprocessed %d utterances\n", len(m.History()))
}
