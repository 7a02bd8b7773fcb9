// Package press builds trigger actions that synthesize keyboard input
// through keybd_event. Each constructor returns a trigger.Action so main
// can bind vocabulary words to key sequences at setup.
package press

import (
	"fmt"
	"time"

	"github.com/micmonay/keybd_event"

	"hark/trigger"
)

// Hold returns an action that presses key, holds it for hold, then
// releases it. Used for sustained movement keys.
func Hold(key int, hold time.Duration) trigger.Action {
	return func() error {
		kb, err := keybd_event.NewKeyBonding()
		if err != nil {
			return fmt.Errorf("keyboard init: %w", err)
		}
		kb.SetKeys(key)
		if err := kb.Press(); err != nil {
			return fmt.Errorf("press: %w", err)
		}
		time.Sleep(hold)
		if err := kb.Release(); err != nil {
			return fmt.Errorf("release: %w", err)
		}
		return nil
	}
}

// Tap returns an action that presses key briefly and settles before
// returning, so consecutive taps do not overlap.
func Tap(key int) trigger.Action {
	return func() error {
		kb, err := keybd_event.NewKeyBonding()
		if err != nil {
			return fmt.Errorf("keyboard init: %w", err)
		}
		kb.SetKeys(key)
		if err := kb.Press(); err != nil {
			return fmt.Errorf("press: %w", err)
		}
		time.Sleep(200 * time.Millisecond)
		if err := kb.Release(); err != nil {
			return fmt.Errorf("release: %w", err)
		}
		time.Sleep(100 * time.Millisecond)
		return nil
	}
}

// Step is one keyboard transition inside a Sequence.
type Step struct {
	Key   int
	Down  bool          // press when true, release when false
	After time.Duration // pause after the transition
}

// Sequence returns an action that performs the steps in order. It allows
// overlapping holds, e.g. holding a movement key while tapping jump.
func Sequence(steps ...Step) trigger.Action {
	return func() error {
		kb, err := keybd_event.NewKeyBonding()
		if err != nil {
			return fmt.Errorf("keyboard init: %w", err)
		}
		for _, s := range steps {
			kb.SetKeys(s.Key)
			if s.Down {
				err = kb.Press()
			} else {
				err = kb.Release()
			}
			if err != nil {
				return fmt.Errorf("step key %d: %w", s.Key, err)
			}
			time.Sleep(s.After)
		}
		return nil
	}
}
