package errors

import "sync"

// Recorder is an ErrorHandler that keeps every report in memory.
// It is intended for tests and for tools that print a summary at exit.
type Recorder struct {
	mu          sync.Mutex
	errors      []*DocsError
	panics      []*PanicError
	buildErrors []*BuildError
}

func (r *Recorder) HandleError(err *DocsError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, err)
}

func (r *Recorder) HandlePanic(err *PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

func (r *Recorder) HandleBuildError(err *BuildError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buildErrors = append(r.buildErrors, err)
}

// Errors returns a copy of the recorded errors.
func (r *Recorder) Errors() []*DocsError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*DocsError(nil), r.errors...)
}

// Panics returns a copy of the recorded panics.
func (r *Recorder) Panics() []*PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*PanicError(nil), r.panics...)
}

// BuildErrors returns a copy of the recorded build errors.
func (r *Recorder) BuildErrors() []*BuildError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*BuildError(nil), r.buildErrors...)
}

// Kinds returns the kind of every recorded DocsError, in order.
func (r *Recorder) Kinds() []ErrorKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]ErrorKind, len(r.errors))
	for i, err := range r.errors {
		kinds[i] = err.Kind
	}
	return kinds
}

// Len returns the total number of reports of any type.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errors) + len(r.panics) + len(r.buildErrors)
}

// Install makes r the global handler until the returned function is called,
// which restores the previous handler.
func (r *Recorder) Install() (restore func()) {
	prev := getHandler()
	SetHandler(r)
	return func() { SetHandler(prev) }
}
