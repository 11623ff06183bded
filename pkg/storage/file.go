package storage

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FileBackend keeps every key in a single JSON object on disk, the way a
// browser storage area keeps one origin's entries together:
//
//	{"playground/date": "\"2024-03-05T14:30:00\"", "visits": "3"}
//
// Values are the serialized strings handed to Set. Writes replace the file
// atomically.
type FileBackend struct {
	path string

	// MaxBytes caps the size of the document. Zero means no limit.
	MaxBytes int

	mu sync.Mutex
}

// OpenFile returns a FileBackend for path, creating the parent directory
// if needed. The file itself is created on first write.
func OpenFile(path string) (*FileBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: empty file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory: %w", err)
	}
	return &FileBackend{path: path}, nil
}

// Path returns the document path.
func (f *FileBackend) Path() string {
	return f.path
}

func (f *FileBackend) read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) > 0 && !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("storage: %s is not valid JSON", f.path)
	}
	return data, nil
}

func (f *FileBackend) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil || len(data) == 0 {
		return "", false, err
	}
	res := gjson.GetBytes(data, gjson.Escape(key))
	if !res.Exists() {
		return "", false, nil
	}
	if res.Type != gjson.String {
		return "", false, fmt.Errorf("storage: entry %q is %s, want string", key, res.Type)
	}
	return res.String(), true, nil
}

func (f *FileBackend) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		data = []byte("{}")
	}
	out, err := sjson.SetBytes(data, gjson.Escape(key), value)
	if err != nil {
		return fmt.Errorf("storage: set %q: %w", key, err)
	}
	if f.MaxBytes > 0 && len(out) > f.MaxBytes {
		return fmt.Errorf("%w: %d bytes > %d", ErrQuotaExceeded, len(out), f.MaxBytes)
	}
	return writeAtomic(f.path, out)
}

// Keys returns the stored keys in sorted order.
func (f *FileBackend) Keys() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return nil, err
	}
	var keys []string
	gjson.ParseBytes(data).ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	sort.Strings(keys)
	return keys, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".docskit-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, path)
}
