// Package config loads docskit.yaml and resolves it against the project's
// go.mod.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/docskit/pkg/storage"
)

// FileName is the configuration file looked up in the project root.
const FileName = "docskit.yaml"

// Storage backends accepted in storage.backend.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

// Config represents the optional docskit.yaml configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Storage StorageConfig `yaml:"storage"`
}

// SiteConfig contains site metadata.
type SiteConfig struct {
	Name  string `yaml:"name,omitempty"`
	Title string `yaml:"title,omitempty"`
}

// StorageConfig selects where playground values are persisted.
type StorageConfig struct {
	Backend  string `yaml:"backend,omitempty"`
	Path     string `yaml:"path,omitempty"`
	MaxBytes int    `yaml:"max_bytes,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root           string
	ModulePath     string
	SiteName       string
	SiteTitle      string
	StorageBackend string
	StoragePath    string
	MaxBytes       int
}

// LoadOptional reads docskit.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads docskit.yaml (if present) and resolves defaults. A missing
// go.mod is not an error; the site name then comes from the directory.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	siteName := strings.TrimSpace(cfg.Site.Name)
	if siteName == "" {
		siteName = defaultSiteName(modulePath, dir)
	}

	siteTitle := strings.TrimSpace(cfg.Site.Title)
	if siteTitle == "" {
		siteTitle = siteName
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if backend == "" {
		backend = BackendMemory
	}
	if err := validateBackend(backend); err != nil {
		return nil, err
	}
	if cfg.Storage.MaxBytes < 0 {
		return nil, fmt.Errorf("storage.max_bytes cannot be negative (got %d)", cfg.Storage.MaxBytes)
	}

	storagePath := strings.TrimSpace(cfg.Storage.Path)
	if storagePath == "" {
		storagePath = defaultStoragePath(backend)
	}
	if storagePath != "" && !filepath.IsAbs(storagePath) {
		storagePath = filepath.Join(dir, storagePath)
	}

	return &Resolved{
		Root:           dir,
		ModulePath:     modulePath,
		SiteName:       siteName,
		SiteTitle:      siteTitle,
		StorageBackend: backend,
		StoragePath:    storagePath,
		MaxBytes:       cfg.Storage.MaxBytes,
	}, nil
}

// OpenBackend opens the configured storage backend. The returned close
// function is never nil.
func (r *Resolved) OpenBackend() (storage.Backend, func() error, error) {
	noop := func() error { return nil }
	switch r.StorageBackend {
	case BackendMemory:
		return storage.NewMemory(), noop, nil
	case BackendNone:
		return storage.Disabled{}, noop, nil
	case BackendFile:
		backend, err := storage.OpenFile(r.StoragePath)
		if err != nil {
			return nil, noop, err
		}
		backend.MaxBytes = r.MaxBytes
		return backend, noop, nil
	case BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(r.StoragePath), 0o755); err != nil {
			return nil, noop, err
		}
		backend, err := storage.OpenSQLite(r.StoragePath)
		if err != nil {
			return nil, noop, err
		}
		return backend, backend.Close, nil
	}
	return nil, noop, validateBackend(r.StorageBackend)
}

// FindProjectRoot walks up from the current directory to find go.mod or
// docskit.yaml.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s or go.mod found", FileName)
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultSiteName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if modName, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "docs"
	}
	return base
}

func defaultStoragePath(backend string) string {
	switch backend {
	case BackendFile:
		return filepath.Join(".docskit", "state.json")
	case BackendSQLite:
		return filepath.Join(".docskit", "state.db")
	}
	return ""
}

func validateBackend(backend string) error {
	switch backend {
	case BackendMemory, BackendFile, BackendSQLite, BackendNone:
		return nil
	}
	return fmt.Errorf("storage.backend must be one of memory, file, sqlite, none (got %q)", backend)
}
