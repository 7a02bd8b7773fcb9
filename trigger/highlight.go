package trigger

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Marker wraps a matched span for display. Detection logic never depends
// on how matches are rendered, so alternate renderers plug in here.
type Marker interface {
	Wrap(s string) string
}

// ANSIMarker brackets matches with raw terminal control sequences.
type ANSIMarker struct {
	Start string
	Reset string
}

func (m ANSIMarker) Wrap(s string) string { return m.Start + s + m.Reset }

// DefaultMarker is bold red, the same sequences the configuration surface
// documents as defaults.
var DefaultMarker = ANSIMarker{Start: "\x1b[1;31m", Reset: "\x1b[0m"}

// PlainMarker brackets matches with plain text, for logs and non-TTY output.
type PlainMarker struct{}

func (PlainMarker) Wrap(s string) string { return ">>" + s + "<<" }

// StyleMarker renders matches through a lipgloss style.
type StyleMarker struct {
	Style lipgloss.Style
}

func NewStyleMarker() StyleMarker {
	return StyleMarker{Style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))}
}

func (m StyleMarker) Wrap(s string) string { return m.Style.Render(s) }

// Annotate reconstructs text with detected triggers marked. Tokens are
// split on whitespace and rejoined with single spaces. In Whole mode a
// token is wrapped entirely, and only when its lowercase form equals a
// detected trigger. In Substring mode only the first matched trigger span
// inside the token is wrapped. Tokens matching no trigger pass through
// untouched.
func Annotate(text string, detected []string, mode Mode, m Marker) string {
	if len(detected) == 0 {
		return strings.Join(strings.Fields(text), " ")
	}

	words := strings.Fields(text)
	for i, word := range words {
		lower := strings.ToLower(word)
		for _, trig := range detected {
			if mode == Whole {
				if lower == trig {
					words[i] = m.Wrap(word)
					break
				}
				continue
			}
			if start, end, ok := substringSpan(word, trig); ok {
				words[i] = word[:start] + m.Wrap(word[start:end]) + word[end:]
				break
			}
		}
	}
	return strings.Join(words, " ")
}

// substringSpan locates trig inside the lowercase form of word and returns
// the matched span as byte offsets into word itself. Lowercasing can change
// a rune's UTF-8 width, so offsets from the lowered string can not be used
// to slice the original; the span is mapped back rune by rune instead. A
// match that ends inside a case-folded rune extends to that rune's end.
func substringSpan(word, trig string) (int, int, bool) {
	for start := 0; start < len(word); {
		_, size := utf8.DecodeRuneInString(word[start:])
		if strings.HasPrefix(strings.ToLower(word[start:]), trig) {
			end := start
			for covered := 0; covered < len(trig); {
				r, s := utf8.DecodeRuneInString(word[end:])
				covered += len(strings.ToLower(string(r)))
				end += s
			}
			return start, end, true
		}
		start += size
	}
	return 0, 0, false
}
