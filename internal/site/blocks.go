package site

import (
	"strconv"
	"strings"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/datetime"
	"github.com/go-drift/docskit/pkg/errors"
	"github.com/go-drift/docskit/pkg/markup"
	"github.com/go-drift/docskit/pkg/storage"
	"github.com/go-drift/docskit/pkg/widgets"
)

// Site renders pages that share a title and a storage backend.
type Site struct {
	Name  string
	Title string
	// Backend keeps playground values. Nil keeps them in memory only.
	Backend storage.Backend
	// Editor is handed to every DateTimePicker.
	Editor datetime.Editor
}

// StorageKey returns the key under which a block's value is kept.
func StorageKey(page *Page, block Block) string {
	return page.Slug + "/" + block.ID
}

func (s *Site) blocks(page *Page, blocks []Block) []core.Widget {
	out := make([]core.Widget, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, s.block(page, b))
	}
	return out
}

func (s *Site) block(page *Page, b Block) core.Widget {
	switch b.Type {
	case BlockAlert:
		children := s.blocks(page, b.Blocks)
		if b.Body != "" {
			children = append([]core.Widget{markup.TextOf(b.Body)}, children...)
		}
		return widgets.Alert{Variant: b.Variant, Title: b.Title, Children: children}
	case BlockCard:
		children := s.blocks(page, b.Blocks)
		if b.Body != "" {
			children = append([]core.Widget{widgets.Markdown{Source: b.Body}}, children...)
		}
		return widgets.Card{Title: b.Title, Children: children}
	case BlockButton:
		return widgets.ButtonOf(b.Body, nil).
			WithVariant(b.Variant).
			WithSize(b.Size).
			WithDisabled(b.Disabled)
	case BlockCode:
		className := ""
		if b.Language != "" {
			className = "language-" + b.Language
		}
		return widgets.CodeBlock{ClassName: className, Code: b.Code, Highlight: b.Highlight}
	case BlockProps:
		return widgets.PropsTable{Props: b.Props}
	case BlockMarkdown:
		return widgets.Markdown{Source: b.Body}
	case BlockDateTime:
		return Playground[string]{
			Backend:    s.Backend,
			StorageKey: StorageKey(page, b),
			Initial:    b.Value,
			Control: func(v string, set func(string)) core.Widget {
				return widgets.DateTimePicker{
					Label:    b.Label,
					Value:    v,
					OnChange: set,
					Help:     b.Help,
					Disabled: b.Disabled,
					DateOnly: b.DateOnly,
					TimeOnly: b.TimeOnly,
					Is12Hour: b.Is12Hour,
					Editor:   s.Editor,
				}
			},
		}
	case BlockText:
		return Playground[string]{
			Backend:    s.Backend,
			StorageKey: StorageKey(page, b),
			Initial:    b.Value,
			Control: func(v string, set func(string)) core.Widget {
				return widgets.TextControl{
					Label:       b.Label,
					Value:       v,
					OnChange:    set,
					Help:        b.Help,
					Placeholder: b.Placeholder,
					Disabled:    b.Disabled,
				}
			},
		}
	case BlockRange:
		return Playground[float64]{
			Backend:    s.Backend,
			StorageKey: StorageKey(page, b),
			Initial:    parseInitial(page, b),
			Control: func(v float64, set func(float64)) core.Widget {
				return widgets.RangeControl{
					Label:    b.Label,
					Value:    v,
					OnChange: set,
					Min:      b.Min,
					Max:      b.Max,
					Step:     b.Step,
					Help:     b.Help,
					Disabled: b.Disabled,
				}
			},
		}
	}
	return nil
}

func parseInitial(page *Page, b Block) float64 {
	if strings.TrimSpace(b.Value) == "" {
		return b.Min
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(b.Value), 64)
	if err != nil {
		errors.Report(&errors.DocsError{
			Op:   "site.RangeBlock",
			Kind: errors.KindParse,
			Key:  StorageKey(page, b),
			Err:  err,
		})
		return b.Min
	}
	return v
}
