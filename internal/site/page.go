// Package site turns YAML page descriptions into documentation pages built
// from docskit widgets.
package site

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/docskit/pkg/errors"
	"github.com/go-drift/docskit/pkg/widgets"
)

// Block types.
const (
	BlockAlert    = "alert"
	BlockCard     = "card"
	BlockButton   = "button"
	BlockCode     = "code"
	BlockProps    = "props"
	BlockMarkdown = "markdown"
	BlockDateTime = "datetime"
	BlockText     = "text"
	BlockRange    = "range"
)

// Page is one documentation page.
//
//	title: DateTimePicker
//	blocks:
//	  - type: markdown
//	    body: Pick a date, a time, or both.
//	  - type: datetime
//	    id: publish
//	    label: Publish
//	    value: "2024-03-05T14:30:00"
type Page struct {
	// Slug names the page in output paths and storage keys. It defaults to
	// the file name without extension.
	Slug        string  `yaml:"slug,omitempty"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description,omitempty"`
	Blocks      []Block `yaml:"blocks"`
}

// Block is one component on a page. Which fields apply depends on Type.
type Block struct {
	Type string `yaml:"type"`
	// ID identifies interactive blocks in storage keys. Defaults to the
	// block type and a running count of interactive blocks, e.g. "datetime-2".
	ID string `yaml:"id,omitempty"`

	Title   string `yaml:"title,omitempty"`
	Variant string `yaml:"variant,omitempty"`
	Size    string `yaml:"size,omitempty"`
	// Body is the text of alerts and buttons, and the source of markdown.
	Body string `yaml:"body,omitempty"`
	// Blocks are nested inside cards and alerts.
	Blocks []Block `yaml:"blocks,omitempty"`

	Language  string `yaml:"language,omitempty"`
	Code      string `yaml:"code,omitempty"`
	Highlight bool   `yaml:"highlight,omitempty"`

	Props []widgets.PropDef `yaml:"props,omitempty"`

	Label       string  `yaml:"label,omitempty"`
	Help        string  `yaml:"help,omitempty"`
	Value       string  `yaml:"value,omitempty"`
	Placeholder string  `yaml:"placeholder,omitempty"`
	Disabled    bool    `yaml:"disabled,omitempty"`
	DateOnly    bool    `yaml:"date_only,omitempty"`
	TimeOnly    bool    `yaml:"time_only,omitempty"`
	Is12Hour    bool    `yaml:"is_12_hour,omitempty"`
	Min         float64 `yaml:"min,omitempty"`
	Max         float64 `yaml:"max,omitempty"`
	Step        float64 `yaml:"step,omitempty"`
}

// Interactive reports whether the block renders a control whose value is
// kept in storage.
func (b Block) Interactive() bool {
	switch b.Type {
	case BlockDateTime, BlockText, BlockRange:
		return true
	}
	return false
}

// LoadPage reads a page from a YAML file.
func LoadPage(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.DocsError{Op: "site.LoadPage", Kind: errors.KindParse, Key: path, Err: err}
	}
	defer f.Close()

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	page, err := ParsePage(f, slug)
	if err != nil {
		return nil, &errors.DocsError{Op: "site.LoadPage", Kind: errors.KindParse, Key: path, Err: err}
	}
	return page, nil
}

// ParsePage decodes a page and fills in defaults. Unknown fields and block
// types are errors.
func ParsePage(r io.Reader, slug string) (*Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var page Page
	if err := dec.Decode(&page); err != nil && err != io.EOF {
		return nil, err
	}
	if page.Slug == "" {
		page.Slug = slug
	}
	if page.Title == "" {
		page.Title = page.Slug
	}
	seen := make(map[string]bool)
	if err := normalize(page.Blocks, seen); err != nil {
		return nil, err
	}
	return &page, nil
}

func normalize(blocks []Block, seen map[string]bool) error {
	for i := range blocks {
		b := &blocks[i]
		switch b.Type {
		case BlockAlert, BlockCard, BlockButton, BlockCode, BlockProps, BlockMarkdown,
			BlockDateTime, BlockText, BlockRange:
		case "":
			return fmt.Errorf("block %d: missing type", i)
		default:
			return fmt.Errorf("block %d: unknown type %q", i, b.Type)
		}
		if b.Interactive() {
			if b.ID == "" {
				b.ID = fmt.Sprintf("%s-%d", b.Type, len(seen)+1)
			}
			if seen[b.ID] {
				return fmt.Errorf("block %d: duplicate id %q", i, b.ID)
			}
			seen[b.ID] = true
		}
		if err := normalize(b.Blocks, seen); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}
