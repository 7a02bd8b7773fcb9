package press

import (
	"time"

	"github.com/micmonay/keybd_event"

	"hark/trigger"
)

const moveHold = 3 * time.Second

// DefaultBindings maps the built-in vocabulary onto WASD-style game
// controls. Several words intentionally share one action (drink, heal and
// potion all tap the potion key).
func DefaultBindings() map[string]trigger.Action {
	dash := Sequence(
		Step{Key: keybd_event.VK_W, Down: true, After: 100 * time.Millisecond},
		Step{Key: keybd_event.VK_SPACE, Down: true, After: 200 * time.Millisecond},
		Step{Key: keybd_event.VK_SPACE, Down: false, After: 100 * time.Millisecond},
		Step{Key: keybd_event.VK_W, Down: false},
	)
	interact := Tap(keybd_event.VK_E)
	attack := Tap(keybd_event.VK_P)
	potion := Tap(keybd_event.VK_R)
	lockOn := Tap(keybd_event.VK_Q)

	return map[string]trigger.Action{
		"forward":  Hold(keybd_event.VK_W, moveHold),
		"backward": Hold(keybd_event.VK_S, moveHold),
		"left":     Hold(keybd_event.VK_A, moveHold),
		"right":    Hold(keybd_event.VK_D, moveHold),
		"roll":     dash,
		"dash":     dash,
		"matrix":   interact,
		"attack":   attack,
		"drink":    potion,
		"heal":     potion,
		"potion":   potion,
		"lock":     lockOn,
		"enemy":    lockOn,
	}
}
