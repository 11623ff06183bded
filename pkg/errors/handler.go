package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every report. It starts as a LogHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler replaces the global handler. Nil restores a LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report sends err to the global handler, stamping the time if unset.
func Report(err *DocsError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	getHandler().HandleError(err)
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	getHandler().HandlePanic(err)
}

// ReportBuildError sends a failed widget build to the global handler.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	getHandler().HandleBuildError(err)
}

// Recover reports a panic in op as a PanicError and, when errp is not nil,
// stores it there so the caller returns it. It must be deferred directly:
//
//	func render(path string) (err error) {
//	    defer errors.Recover("site.render", &err)
//	    ...
//	}
func Recover(op string, errp *error) {
	if r := recover(); r != nil {
		perr := &PanicError{Op: op, Value: r, StackTrace: captureStack(3)}
		ReportPanic(perr)
		if errp != nil {
			*errp = perr
		}
	}
}

// AsError turns a panic into an error stored in *errp instead of reporting
// it, leaving the caller to decide the kind. It must be deferred directly:
//
//	func (s *Store[V]) read() (raw string, ok bool, err error) {
//	    defer errors.AsError("get", &err)
//	    return s.backend.Get(s.key)
//	}
func AsError(op string, errp *error) {
	if r := recover(); r != nil {
		*errp = fmt.Errorf("%s panicked: %v", op, r)
	}
}

// CaptureStack returns the caller's stack, one "function file:line" entry
// per frame, without runtime frames.
func CaptureStack() string {
	return captureStack(3)
}

func captureStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&sb, "%s %s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
