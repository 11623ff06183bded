package storage

import (
	"fmt"

	"github.com/go-drift/docskit/pkg/errors"
)

// Source records where a Store's initial value came from.
type Source int

const (
	// SourceDefault means no entry existed and the default was used.
	SourceDefault Source = iota
	// SourceStored means a persisted entry was read and decoded.
	SourceStored
	// SourceFallback means reading or decoding failed and the default was used.
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceStored:
		return "stored"
	case SourceFallback:
		return "fallback"
	default:
		return "default"
	}
}

// Option configures a Store.
type Option[V any] func(*Store[V])

// WithCodec replaces the default JSONCodec.
func WithCodec[V any](c Codec[V]) Option[V] {
	return func(s *Store[V]) {
		if c != nil {
			s.codec = c
		}
	}
}

// Store holds one value under one key, mirrored to a Backend.
//
// Store is NOT safe for concurrent use. It follows the same discipline as
// UI state: read and write it from one goroutine. Two stores opened on the
// same key do not observe each other's writes.
type Store[V any] struct {
	key     string
	backend Backend
	codec   Codec[V]
	value   V
	source  Source
	lastErr error
}

// Open initializes a store for key. A persisted entry that decodes is used
// as the initial value; otherwise def is used. Read and decode failures are
// reported to the errors package and never returned. A nil backend gives a
// volatile, memory-only store.
func Open[V any](backend Backend, key string, def V, opts ...Option[V]) *Store[V] {
	s := &Store[V]{
		key:     key,
		backend: backend,
		codec:   JSONCodec[V]{},
		value:   def,
		source:  SourceDefault,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(def)
	return s
}

func (s *Store[V]) load(def V) {
	if s.backend == nil {
		return
	}
	raw, ok, err := s.read()
	if err != nil {
		s.fallback(def, errors.KindStorage, err)
		return
	}
	if !ok {
		return
	}
	v, err := s.decode(raw)
	if err != nil {
		s.fallback(def, errors.KindDecode, err)
		return
	}
	s.value = v
	s.source = SourceStored
}

func (s *Store[V]) fallback(def V, kind errors.ErrorKind, err error) {
	s.value = def
	s.source = SourceFallback
	s.lastErr = err
	errors.Report(&errors.DocsError{
		Op:   "storage.Open",
		Kind: kind,
		Key:  s.key,
		Err:  err,
	})
}

// Key returns the key the store was opened with.
func (s *Store[V]) Key() string {
	return s.key
}

// Value returns the current in-memory value.
func (s *Store[V]) Value() V {
	return s.value
}

// Source reports where the initial value came from.
func (s *Store[V]) Source() Source {
	return s.source
}

// LastErr returns the most recent read, decode, encode or write failure,
// or nil when the last operation persisted cleanly.
func (s *Store[V]) LastErr() error {
	return s.lastErr
}

// Set replaces the value. The in-memory value is updated before anything
// else and is never rolled back; persisting it is best effort.
func (s *Store[V]) Set(v V) {
	s.value = v
	s.persist(v)
}

// Update replaces the value with fn applied to the current value.
func (s *Store[V]) Update(fn func(V) V) {
	if fn == nil {
		return
	}
	s.Set(fn(s.value))
}

func (s *Store[V]) persist(v V) {
	if s.backend == nil {
		s.lastErr = nil
		return
	}
	raw, err := s.encode(v)
	if err != nil {
		s.fail(errors.KindEncode, err)
		return
	}
	if err := s.write(raw); err != nil {
		s.fail(errors.KindStorage, err)
		return
	}
	s.lastErr = nil
}

func (s *Store[V]) read() (raw string, ok bool, err error) {
	defer errors.AsError("get", &err)
	return s.backend.Get(s.key)
}

func (s *Store[V]) write(raw string) (err error) {
	defer errors.AsError("set", &err)
	return s.backend.Set(s.key, raw)
}

func (s *Store[V]) decode(raw string) (v V, err error) {
	defer errors.AsError("decode", &err)
	return s.codec.Decode(raw)
}

func (s *Store[V]) encode(v V) (raw string, err error) {
	defer errors.AsError("encode", &err)
	return s.codec.Encode(v)
}

func (s *Store[V]) fail(kind errors.ErrorKind, err error) {
	s.lastErr = err
	errors.Report(&errors.DocsError{
		Op:   "storage.Store.Set",
		Kind: kind,
		Key:  s.key,
		Err:  err,
	})
}

func (s *Store[V]) String() string {
	return fmt.Sprintf("Store(%s, %s)", s.key, s.source)
}
