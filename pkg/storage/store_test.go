package storage_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/docskit/pkg/errors"
	"github.com/go-drift/docskit/pkg/storage"
)

type counter struct {
	Count int `json:"count" yaml:"count"`
}

// brokenBackend fails on demand and records what it was asked to store.
type brokenBackend struct {
	getErr  error
	setErr  error
	entries map[string]string
	writes  int
}

func (b *brokenBackend) Get(key string) (string, bool, error) {
	if b.getErr != nil {
		return "", false, b.getErr
	}
	v, ok := b.entries[key]
	return v, ok, nil
}

func (b *brokenBackend) Set(key, value string) error {
	b.writes++
	if b.setErr != nil {
		return b.setErr
	}
	if b.entries == nil {
		b.entries = map[string]string{}
	}
	b.entries[key] = value
	return nil
}

func recordErrors(t *testing.T) *errors.Recorder {
	t.Helper()
	rec := &errors.Recorder{}
	t.Cleanup(rec.Install())
	return rec
}

func TestOpenUsesDefaultWhenAbsent(t *testing.T) {
	rec := recordErrors(t)

	s := storage.Open(storage.NewMemory(), "theme", "light")

	assert.Equal(t, "light", s.Value())
	assert.Equal(t, storage.SourceDefault, s.Source())
	assert.NoError(t, s.LastErr())
	assert.Zero(t, rec.Len())
}

func TestOpenUsesStoredValue(t *testing.T) {
	backend := storage.NewMemory()
	require.NoError(t, backend.Set("prefs", `{"count":7}`))

	s := storage.Open(backend, "prefs", counter{})

	assert.Equal(t, counter{Count: 7}, s.Value())
	assert.Equal(t, storage.SourceStored, s.Source())
}

func TestOpenFallsBackOnCorruptPayload(t *testing.T) {
	rec := recordErrors(t)
	backend := storage.NewMemory()
	require.NoError(t, backend.Set("prefs", `{"count":`))

	s := storage.Open(backend, "prefs", counter{Count: 1})

	assert.Equal(t, counter{Count: 1}, s.Value())
	assert.Equal(t, storage.SourceFallback, s.Source())
	assert.Equal(t, []errors.ErrorKind{errors.KindDecode}, rec.Kinds())
}

func TestOpenFallsBackWhenDisabled(t *testing.T) {
	rec := recordErrors(t)

	s := storage.Open[[]string](storage.Disabled{}, "tabs", []string{"a"})

	assert.Equal(t, []string{"a"}, s.Value())
	assert.Equal(t, storage.SourceFallback, s.Source())
	assert.ErrorIs(t, s.LastErr(), storage.ErrUnavailable)
	assert.Equal(t, []errors.ErrorKind{errors.KindStorage}, rec.Kinds())
}

func TestSetCommitsInMemoryWhenPersistenceFails(t *testing.T) {
	rec := recordErrors(t)
	backend := &brokenBackend{setErr: storage.ErrQuotaExceeded}
	s := storage.Open(backend, "n", 0)

	for _, v := range []int{1, -5, 42, 0} {
		s.Set(v)
		assert.Equal(t, v, s.Value())
	}
	assert.Equal(t, 4, backend.writes)
	assert.ErrorIs(t, s.LastErr(), storage.ErrQuotaExceeded)
	assert.Len(t, rec.Errors(), 4)
}

func TestSetClearsLastErrAfterRecovery(t *testing.T) {
	recordErrors(t)
	backend := &brokenBackend{setErr: stderrors.New("busy")}
	s := storage.Open(backend, "n", 0)

	s.Set(1)
	require.Error(t, s.LastErr())

	backend.setErr = nil
	s.Set(2)
	assert.NoError(t, s.LastErr())
	assert.Equal(t, "2", backend.entries["n"])
}

func TestSetPersistsForNextOpen(t *testing.T) {
	backend := storage.NewMemory()
	storage.Open(backend, "greeting", "").Set("hello")

	reopened := storage.Open(backend, "greeting", "default")
	assert.Equal(t, "hello", reopened.Value())
	assert.Equal(t, storage.SourceStored, reopened.Source())
}

func TestUpdateReadsCurrentValue(t *testing.T) {
	s := storage.Open(storage.NewMemory(), "counter", counter{})

	for i := 0; i < 3; i++ {
		s.Update(func(c counter) counter { return counter{Count: c.Count + 1} })
	}

	assert.Equal(t, counter{Count: 3}, s.Value())
}

func TestUpdateMatchesSetOfComputedValue(t *testing.T) {
	double := func(n int) int { return n * 2 }

	a := storage.Open(storage.NewMemory(), "a", 3)
	b := storage.Open(storage.NewMemory(), "b", 3)

	a.Update(double)
	b.Set(double(b.Value()))

	assert.Equal(t, b.Value(), a.Value())
	a.Update(nil)
	assert.Equal(t, 6, a.Value())
}

func TestStoresOnSameKeyAreIndependent(t *testing.T) {
	backend := storage.NewMemory()
	first := storage.Open(backend, "shared", 0)
	second := storage.Open(backend, "shared", 0)

	first.Set(10)

	assert.Equal(t, 0, second.Value())
	assert.Equal(t, 10, storage.Open(backend, "shared", 0).Value())
}

func TestNilBackendIsVolatile(t *testing.T) {
	rec := recordErrors(t)
	s := storage.Open[map[string]int](nil, "m", nil)

	s.Set(map[string]int{"a": 1})

	assert.Equal(t, map[string]int{"a": 1}, s.Value())
	assert.NoError(t, s.LastErr())
	assert.Zero(t, rec.Len())
}

func TestEncodeFailureIsReported(t *testing.T) {
	rec := recordErrors(t)
	backend := storage.NewMemory()
	s := storage.Open[any](backend, "fn", nil)

	s.Set(func() {})

	assert.NotNil(t, s.Value())
	assert.Equal(t, []errors.ErrorKind{errors.KindEncode}, rec.Kinds())
	keys, _ := backend.Keys()
	assert.Empty(t, keys)
}

func TestYAMLCodec(t *testing.T) {
	backend := storage.NewMemory()
	s := storage.Open(backend, "prefs", counter{}, storage.WithCodec[counter](storage.YAMLCodec[counter]{}))
	s.Set(counter{Count: 5})

	raw, ok, err := backend.Get("prefs")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "count: 5\n", raw)

	again := storage.Open(backend, "prefs", counter{}, storage.WithCodec[counter](storage.YAMLCodec[counter]{}))
	assert.Equal(t, counter{Count: 5}, again.Value())
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "default", storage.SourceDefault.String())
	assert.Equal(t, "stored", storage.SourceStored.String())
	assert.Equal(t, "fallback", storage.SourceFallback.String())
}

type panickingBackend struct {
	onGet, onSet bool
}

func (b panickingBackend) Get(string) (string, bool, error) {
	if b.onGet {
		panic("get exploded")
	}
	return "", false, nil
}

func (b panickingBackend) Set(string, string) error {
	if b.onSet {
		panic("set exploded")
	}
	return nil
}

type panickingCodec struct{}

func (panickingCodec) Encode(int) (string, error) { return "1", nil }
func (panickingCodec) Decode(string) (int, error) { panic("decode exploded") }

func TestPanicsAreReportedNotPropagated(t *testing.T) {
	tests := []struct {
		name    string
		open    func() *storage.Store[int]
		set     bool
		kind    errors.ErrorKind
		source  storage.Source
		wantErr string
	}{
		{
			name:    "get",
			open:    func() *storage.Store[int] { return storage.Open[int](panickingBackend{onGet: true}, "k", 7) },
			kind:    errors.KindStorage,
			source:  storage.SourceFallback,
			wantErr: "get panicked: get exploded",
		},
		{
			name:    "set",
			open:    func() *storage.Store[int] { return storage.Open[int](panickingBackend{onSet: true}, "k", 7) },
			set:     true,
			kind:    errors.KindStorage,
			source:  storage.SourceDefault,
			wantErr: "set panicked: set exploded",
		},
		{
			name: "decode",
			open: func() *storage.Store[int] {
				backend := storage.NewMemory()
				require.NoError(t, backend.Set("k", "5"))
				return storage.Open[int](backend, "k", 7, storage.WithCodec[int](panickingCodec{}))
			},
			kind:    errors.KindDecode,
			source:  storage.SourceFallback,
			wantErr: "decode panicked: decode exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recordErrors(t)

			var s *storage.Store[int]
			require.NotPanics(t, func() {
				s = tt.open()
				if tt.set {
					s.Set(9)
				}
			})

			want := 7
			if tt.set {
				want = 9
			}
			assert.Equal(t, want, s.Value())
			assert.Equal(t, tt.source, s.Source())
			assert.Equal(t, []errors.ErrorKind{tt.kind}, rec.Kinds())
			require.Error(t, s.LastErr())
			assert.Equal(t, tt.wantErr, s.LastErr().Error())
		})
	}
}
