package press

import "testing"

func TestDefaultBindingsCoverGameWords(t *testing.T) {
	bindings := DefaultBindings()
	for _, word := range []string{
		"forward", "backward", "left", "right",
		"roll", "dash", "matrix", "attack",
		"drink", "heal", "potion", "lock", "enemy",
	} {
		if bindings[word] == nil {
			t.Errorf("no binding for %q", word)
		}
	}
}

func TestDefaultBindingsLeaveUnbound(t *testing.T) {
	// "run" and "stop" are vocabulary words without default bindings; a
	// detected word with no action is a silent skip, not an error.
	bindings := DefaultBindings()
	for _, word := range []string{"run", "stop"} {
		if bindings[word] != nil {
			t.Errorf("unexpected binding for %q", word)
		}
	}
}
