package trigger

import "fmt"

// Dispatcher invokes the registered action for each detected trigger word.
// Failures are isolated per action: a panicking or erroring action is
// reported through onErr and never prevents sibling triggers from firing.
type Dispatcher struct {
	reg   *Registry
	onErr func(word string, err error)
}

// NewDispatcher wires a dispatcher to reg. onErr may be nil, in which case
// action failures are dropped.
func NewDispatcher(reg *Registry, onErr func(word string, err error)) *Dispatcher {
	return &Dispatcher{reg: reg, onErr: onErr}
}

// Dispatch invokes each detected word's action synchronously, exactly once
// per call, and returns the number of actions that ran. Words without a
// registered action are skipped.
func (d *Dispatcher) Dispatch(detected []string) int {
	fired := 0
	for _, word := range detected {
		action, ok := d.reg.Lookup(word)
		if !ok {
			continue
		}
		fired++
		if err := d.invoke(action); err != nil && d.onErr != nil {
			d.onErr(word, err)
		}
	}
	return fired
}

func (d *Dispatcher) invoke(action Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()
	return action()
}
