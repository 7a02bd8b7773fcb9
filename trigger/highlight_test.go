package trigger

import (
	"testing"
	"unicode/utf8"
)

var testMarker = PlainMarker{}

func TestAnnotateWholeWrapsExactTokensOnly(t *testing.T) {
	detected := Detect("turn left now", Whole, []string{"left", "right"})
	got := Annotate("turn left now", detected, Whole, testMarker)
	if got != "turn >>left<< now" {
		t.Fatalf("got %q", got)
	}
}

func TestAnnotateWholeSkipsContainingTokens(t *testing.T) {
	// "stopping" contains "stop" but is not an exact token match.
	got := Annotate("stopping here stop", []string{"stop"}, Whole, testMarker)
	if got != "stopping here >>stop<<" {
		t.Fatalf("got %q", got)
	}
}

func TestAnnotateSubstringWrapsMatchedSpan(t *testing.T) {
	detected := Detect("I am running fast", Substring, []string{"run"})
	got := Annotate("I am running fast", detected, Substring, testMarker)
	if got != "I am >>run<<ning fast" {
		t.Fatalf("got %q", got)
	}
}

func TestAnnotateNoMatchesReturnsTextUnchanged(t *testing.T) {
	got := Annotate("nothing to see here", nil, Whole, testMarker)
	if got != "nothing to see here" {
		t.Fatalf("got %q", got)
	}
}

func TestAnnotateNormalizesSpacing(t *testing.T) {
	got := Annotate("  spaced   out  ", nil, Whole, testMarker)
	if got != "spaced out" {
		t.Fatalf("got %q", got)
	}
}

func TestAnnotatePreservesOriginalCase(t *testing.T) {
	got := Annotate("Turn LEFT now", []string{"left"}, Whole, testMarker)
	if got != "Turn >>LEFT<< now" {
		t.Fatalf("got %q", got)
	}
}

func TestAnnotateANSIMarker(t *testing.T) {
	m := ANSIMarker{Start: "\x1b[1;31m", Reset: "\x1b[0m"}
	got := Annotate("left", []string{"left"}, Whole, m)
	want := "\x1b[1;31mleft\x1b[0m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAnnotateSubstringCaseChangingRunes(t *testing.T) {
	// Lowercasing can change a rune's byte width ('Ⱥ' is 2 bytes, 'ⱥ' is
	// 3), so the matched span must be located in the original token, not
	// sliced with offsets from the lowered one.
	cases := []struct {
		text string
		want string
	}{
		{"Ⱥrun", "Ⱥ>>run<<"},
		{"İrun", "İ>>run<<"},
		{"runȺ", ">>run<<Ⱥ"},
	}
	for _, c := range cases {
		got := Annotate(c.text, []string{"run"}, Substring, testMarker)
		if got != c.want {
			t.Errorf("Annotate(%q) = %q, want %q", c.text, got, c.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("Annotate(%q) produced invalid UTF-8: %q", c.text, got)
		}
	}
}

func TestAnnotateMultipleTokens(t *testing.T) {
	detected := Detect("attack drink attack", Whole, []string{"attack", "drink"})
	got := Annotate("attack drink attack", detected, Whole, testMarker)
	if got != ">>attack<< >>drink<< >>attack<<" {
		t.Fatalf("got %q", got)
	}
}
