// Package scope provides the ambient key/value context available to mounted
// components. Scopes chain to a parent, so a value set at a composition
// point is visible to every descendant that looks it up.
package scope

import "sync"

// Scope is a key/value store with parent chaining. Lookups walk the chain
// from the scope itself to the root.
type Scope struct {
	parent *Scope

	mu     sync.RWMutex
	values map[string]any
}

// New creates a scope with the given parent. A nil parent creates a root
// scope.
func New(parent *Scope) *Scope {
	return &Scope{parent: parent}
}

// Set stores a value on this scope, shadowing any value under the same key
// in parent scopes.
func (s *Scope) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[key] = value
}

// Get retrieves a value from this scope or its parents. Returns nil when no
// scope in the chain holds the key.
func (s *Scope) Get(key string) any {
	s.mu.RLock()
	if s.values != nil {
		if val, ok := s.values[key]; ok {
			s.mu.RUnlock()
			return val
		}
	}
	s.mu.RUnlock()

	if s.parent != nil {
		return s.parent.Get(key)
	}
	return nil
}

// Parent returns the parent scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}
