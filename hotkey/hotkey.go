// Package hotkey delivers global ctrl+shift+space presses, used to pause
// and resume trigger dispatch while the monitor keeps listening.
package hotkey

type Hotkey interface {
	Register() error
	Unregister()
	// Pressed receives one value per hotkey press.
	Pressed() <-chan struct{}
}
