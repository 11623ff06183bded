package core

import "github.com/go-drift/docskit/pkg/storage"

// Managed holds a value and triggers rebuilds when it changes.
//
// Managed is NOT thread-safe. It must only be accessed from the goroutine
// driving the tree.
//
//	type counterState struct {
//	    core.StateBase
//	    count *core.Managed[int]
//	}
//
//	func (s *counterState) InitState() {
//	    s.count = core.NewManaged(s, 0)
//	}
type Managed[T any] struct {
	base  *StateBase
	value T
}

// NewManaged creates a new managed state value.
func NewManaged[T any](s stateBase, initial T) *Managed[T] {
	return &Managed[T]{
		base:  s.state(),
		value: initial,
	}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value and triggers a rebuild.
func (m *Managed[T]) Set(value T) {
	m.value = value
	m.base.SetState(nil)
}

// Update applies a transformation to the current value and triggers a rebuild.
func (m *Managed[T]) Update(transform func(T) T) {
	if transform == nil {
		return
	}
	m.Set(transform(m.value))
}

// Persisted is a Managed value mirrored to a storage backend under a key.
// It has the same calling convention as Managed; reads always come from
// memory and writes persist on a best-effort basis.
type Persisted[T any] struct {
	base  *StateBase
	store *storage.Store[T]
}

// UsePersisted creates a Persisted value for the state. The initial value is
// read from backend under key, falling back to initial when the entry is
// absent or unreadable. Call it once in InitState.
//
//	func (s *playgroundState) InitState() {
//	    s.when = core.UsePersisted(s, backend, "playground/when", "")
//	}
//
// The value lives as long as the state; there is nothing to close.
func UsePersisted[T any](s stateBase, backend storage.Backend, key string, initial T, opts ...storage.Option[T]) *Persisted[T] {
	return &Persisted[T]{
		base:  s.state(),
		store: storage.Open(backend, key, initial, opts...),
	}
}

// Value returns the current in-memory value.
func (p *Persisted[T]) Value() T {
	return p.store.Value()
}

// Set replaces the value, persists it, and triggers a rebuild.
func (p *Persisted[T]) Set(value T) {
	p.store.Set(value)
	p.base.SetState(nil)
}

// Update replaces the value with transform applied to the current value.
func (p *Persisted[T]) Update(transform func(T) T) {
	if transform == nil {
		return
	}
	p.Set(transform(p.store.Value()))
}

// Store exposes the underlying store for diagnostics.
func (p *Persisted[T]) Store() *storage.Store[T] {
	return p.store
}
