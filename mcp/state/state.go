package state

import (
	"context"
	"sync"
)

// State is the per-call shared container a parent command populates and its
// descendants read or modify. The executor creates one instance per tool call
// and threads the same instance through every stage of the chain; no command
// owns it and it is discarded when the call ends.
type State struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

// New returns an empty container.
func New() *State {
	return &State{values: map[string]interface{}{}}
}

// Set stores a value under key.
func (s *State) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Lookup returns the value stored under key and whether it was present.
func (s *State) Lookup(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// String returns the value under key coerced to string, or fallback when the
// key is absent or not a string.
func (s *State) String(key, fallback string) string {
	value, ok := s.Lookup(key)
	if !ok {
		return fallback
	}
	text, ok := value.(string)
	if !ok {
		return fallback
	}
	return text
}

type stateKey string

// Key identifies the chain state inside a command's context.
var Key = stateKey("state")

// With attaches a state container to ctx.
func With(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, Key, s)
}

// From retrieves the state container a chain executor attached to the
// command's context. Command bodies call this to read what their ancestors
// established.
func From(ctx context.Context) (*State, bool) {
	ret := ctx.Value(Key)
	if ret == nil {
		return nil, false
	}
	s, ok := ret.(*State)
	return s, ok
}
