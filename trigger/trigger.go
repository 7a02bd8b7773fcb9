// Package trigger implements the detection core: a vocabulary of trigger
// words is matched against each utterance under one of two modes, and a
// registry maps detected words to caller-supplied actions.
package trigger

import "sync"

// Action is a side-effecting operation bound to a trigger word, typically
// a simulated key sequence. Actions may block.
type Action func() error

// Registry maps trigger words to actions. Registering a word that is not
// in the configured vocabulary is legal but inert; a detected word with no
// registered action is silently skipped. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Action)}
}

// Register binds action to word, replacing any prior binding.
func (r *Registry) Register(word string, action Action) {
	r.mu.Lock()
	r.actions[word] = action
	r.mu.Unlock()
}

// Lookup returns the action bound to word, if any.
func (r *Registry) Lookup(word string) (Action, bool) {
	r.mu.RLock()
	a, ok := r.actions[word]
	r.mu.RUnlock()
	return a, ok
}
