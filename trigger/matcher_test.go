package trigger

import (
	"reflect"
	"testing"
)

func assertDetected(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("detected %v, want %v", got, want)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("full"); err != nil || m != Whole {
		t.Fatalf("ParseMode(full) = %v, %v", m, err)
	}
	if m, err := ParseMode("partial"); err != nil || m != Substring {
		t.Fatalf("ParseMode(partial) = %v, %v", m, err)
	}
	if _, err := ParseMode("strict"); err == nil {
		t.Fatal("ParseMode(strict) should fail")
	}
	if _, err := ParseMode(""); err == nil {
		t.Fatal("ParseMode(\"\") should fail")
	}
}

func TestWholeRequiresTokenBoundary(t *testing.T) {
	vocab := []string{"right"}
	assertDetected(t, Detect("rightful heir", Whole, vocab), nil)
	assertDetected(t, Detect("turn right now", Whole, vocab), []string{"right"})
	assertDetected(t, Detect("right", Whole, vocab), []string{"right"})
}

func TestSubstringMatchesInsideWords(t *testing.T) {
	assertDetected(t, Detect("rightful heir", Substring, []string{"right"}), []string{"right"})
	assertDetected(t, Detect("I am running fast", Substring, []string{"run"}), []string{"run"})
}

func TestDetectIsCaseInsensitive(t *testing.T) {
	assertDetected(t, Detect("Turn LEFT now", Whole, []string{"left", "right"}), []string{"left"})
}

func TestDetectDeduplicatesWithinUtterance(t *testing.T) {
	got := Detect("run run run", Whole, []string{"run"})
	assertDetected(t, got, []string{"run"})

	got = Detect("stop and stop", Substring, []string{"stop", "stop"})
	assertDetected(t, got, []string{"stop"})
}

func TestDetectOnlyVocabularyWords(t *testing.T) {
	vocab := []string{"left", "right"}
	for _, w := range Detect("go left and attack", Whole, vocab) {
		if w != "left" && w != "right" {
			t.Fatalf("detected word %q not in vocabulary", w)
		}
	}
}

func TestDetectEmptyInputs(t *testing.T) {
	assertDetected(t, Detect("", Whole, []string{"run"}), nil)
	assertDetected(t, Detect("", Substring, []string{"run"}), nil)
	assertDetected(t, Detect("   ", Substring, []string{"run"}), nil)

	// An empty-string vocabulary entry must never match everything.
	assertDetected(t, Detect("anything at all", Whole, []string{""}), nil)
	assertDetected(t, Detect("anything at all", Substring, []string{""}), nil)
}

func TestDetectIsIdempotent(t *testing.T) {
	vocab := []string{"attack", "drink", "run"}
	text := "attack then drink then run away"
	first := Detect(text, Whole, vocab)
	second := Detect(text, Whole, vocab)
	assertDetected(t, second, first)
}

func TestDetectMultipleTriggersSorted(t *testing.T) {
	got := Detect("drink potion and attack", Whole, []string{"potion", "attack", "drink"})
	assertDetected(t, got, []string{"attack", "drink", "potion"})
}
