// Package log writes hark's diagnostics and utterance logs. Logging is
// optional: every helper is a no-op until Init succeeds, so library code
// can log without caring whether a log directory was configured.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	diagLog       zerolog.Logger
	diagFile      *os.File
	utteranceFile *os.File
	logMu         sync.Mutex
	logReady      bool
	pid           int
	dir           string
)

// ResolveDir picks the log directory: the -logpath flag wins, then the
// HARK_LOG_PATH environment variable, then an OS-specific default.
func ResolveDir(flagPath string) (string, error) {
	abs := func(p string) (string, error) {
		if filepath.IsAbs(p) {
			return p, nil
		}
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(wd, p), nil
	}

	if flagPath != "" {
		return abs(flagPath)
	}
	if envPath := os.Getenv("HARK_LOG_PATH"); envPath != "" {
		return abs(envPath)
	}
	return getDefaultDir()
}

func SetDir(d string) { dir = d }

func Dir() string { return dir }

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error

	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	utterancePath := filepath.Join(dir, "utterance_log.txt")
	utteranceFile, err = os.OpenFile(utterancePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		diagFile.Close()
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	if utteranceFile != nil {
		utteranceFile.Close()
		utteranceFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

// UtteranceText appends one processed utterance to the utterance log.
func UtteranceText(text string) {
	if !logReady {
		return
	}
	logMu.Lock()
	defer logMu.Unlock()
	line := fmt.Sprintf("%s\t[%d]\t%s\n", time.Now().Format("2006-01-02 15:04:05"), pid, text)
	utteranceFile.WriteString(line)
}

// Detection records the triggers found in one utterance and how many
// actions actually fired.
func Detection(words []string, mode string, fired int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Strs("words", words).
		Str("mode", mode).
		Int("fired", fired).
		Msg("detection")
}

// ActionError records a failed or panicked action without interrupting
// the dispatch of sibling triggers.
func ActionError(word string, err error) {
	if !logReady {
		return
	}
	diagLog.Error().
		Str("word", word).
		Err(err).
		Msg("action_error")
}

func SessionStart(mode string, words int, device string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("mode", mode).
		Int("words", words).
		Str("device", device).
		Msg("session_start")
}

func SessionEnd(utterances int, dropped uint64) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("utterances", utterances).
		Uint64("dropped", dropped).
		Msg("session_end")
}
