package trigger

import (
	"fmt"
	"sort"
	"strings"
)

// Mode selects the word-boundary rule used during detection.
type Mode int

const (
	// Whole requires the trigger to appear as a complete space-delimited
	// token: "right" does not match inside "rightful".
	Whole Mode = iota
	// Substring matches the trigger anywhere in the text, including
	// inside other words: "run" matches inside "running".
	Substring
)

func (m Mode) String() string {
	switch m {
	case Whole:
		return "full"
	case Substring:
		return "partial"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps the configuration surface names onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "full":
		return Whole, nil
	case "partial":
		return Substring, nil
	}
	return 0, fmt.Errorf("invalid mode %q (use \"full\" or \"partial\")", s)
}

// Detect returns the trigger words from vocab present in text under the
// given mode, sorted and deduplicated. It is a pure function: every call
// starts from an empty detected set, so a word suppressed in one utterance
// is never suppressed in the next. Empty vocabulary entries are ignored.
func Detect(text string, mode Mode, vocab []string) []string {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil
	}
	padded := " " + lower + " "

	var detected []string
	seen := make(map[string]struct{}, len(vocab))
	for _, word := range vocab {
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		var hit bool
		switch mode {
		case Whole:
			hit = strings.Contains(padded, " "+word+" ")
		case Substring:
			hit = strings.Contains(lower, word)
		}
		if hit {
			seen[word] = struct{}{}
			detected = append(detected, word)
		}
	}
	sort.Strings(detected)
	return detected
}
