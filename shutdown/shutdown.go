// Package shutdown cancels a context on the platform's termination signals.
package shutdown

import (
	"context"
	"os/signal"
)

// Context returns a child of parent that is cancelled when the process
// receives a termination signal. The returned stop function releases the
// signal handler.
func Context(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals()...)
}
