package shutdown

import (
	"context"
	"testing"
	"time"
)

func TestContextStopCancels(t *testing.T) {
	ctx, stop := Context(context.Background())

	select {
	case <-ctx.Done():
		t.Fatal("context cancelled before stop")
	default:
	}

	stop()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("stop did not cancel the context")
	}
}

func TestContextInheritsParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := Context(parent)
	defer stop()

	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("parent cancellation did not propagate")
	}
}
