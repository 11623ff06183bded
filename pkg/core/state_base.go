package core

import "sync"

// stateBase is satisfied by any struct that embeds StateBase.
// Hooks accept stateBase so callers can pass s directly.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase provides the common State plumbing. Embed it in a state struct
// and override only the lifecycle methods you need:
//
//	type pickerState struct {
//	    core.StateBase
//	    value *core.Managed[string]
//	}
type StateBase struct {
	element   *StatefulElement
	disposers []func()
	disposed  bool
	mu        sync.Mutex
}

// SetElement stores the element reference for triggering rebuilds.
// This method is called automatically by the framework.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element associated with this state, or nil before
// mounting.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// Widget returns the element's current widget, or nil before mounting.
func (s *StateBase) Widget() Widget {
	if s.element == nil {
		return nil
	}
	return s.element.Widget()
}

// SetState executes fn and schedules a rebuild. Safe to call after
// disposal, where it only runs fn.
//
// SetState is NOT thread-safe. Call it from the goroutine driving the tree.
func (s *StateBase) SetState(fn func()) {
	if fn != nil {
		fn()
	}
	if s.IsDisposed() {
		return
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers a cleanup function to run when the state is disposed.
// Cleanups run once, in reverse registration order. Registering after
// disposal runs the cleanup immediately.
func (s *StateBase) OnDispose(cleanup func()) {
	if cleanup == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		cleanup()
		return
	}
	s.disposers = append(s.disposers, cleanup)
	s.mu.Unlock()
}

// Dispose runs the registered cleanups. States that override Dispose must
// call s.StateBase.Dispose().
func (s *StateBase) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	s.mu.Unlock()

	for i := len(disposers) - 1; i >= 0; i-- {
		disposers[i]()
	}
}

// InitState is a no-op default implementation.
func (s *StateBase) InitState() {}

// Build is a no-op default implementation that returns nil.
func (s *StateBase) Build(ctx BuildContext) Widget {
	return nil
}

// DidUpdateWidget is a no-op default implementation.
func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}

// IsDisposed reports whether the state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
