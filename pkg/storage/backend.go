// Package storage provides a durable keyed value store that mirrors an
// in-memory value to a fallible persistence backend.
//
// The in-memory value is authoritative. Every write lands in memory first
// and is then copied to the backend on a best-effort basis; when the backend
// is missing, disabled, full, or holds a corrupt payload, the store keeps
// working from memory and reports the failure to the errors package instead
// of returning it.
//
//	backend, _ := storage.OpenFile("prefs.json")
//	count := storage.Open(backend, "visits", 0)
//	count.Update(func(n int) int { return n + 1 })
package storage

import "errors"

var (
	// ErrUnavailable is returned by backends whose storage is switched off.
	ErrUnavailable = errors.New("storage: backend unavailable")

	// ErrQuotaExceeded is returned when a write would exceed a backend's
	// size limit.
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
)

// Backend is a key/value surface holding serialized strings.
//
// Get reports ok=false with a nil error when the key is absent. Both methods
// may fail opaquely; the Store treats every failure as non-fatal.
// Implementations must be safe for concurrent use.
type Backend interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Lister is implemented by backends that can enumerate their keys.
type Lister interface {
	Keys() ([]string, error)
}

// Disabled is a Backend whose storage has been switched off, such as a
// browser with storage blocked. Every call fails with ErrUnavailable.
type Disabled struct{}

func (Disabled) Get(string) (string, bool, error) { return "", false, ErrUnavailable }

func (Disabled) Set(string, string) error { return ErrUnavailable }
