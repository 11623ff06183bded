package testing

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/markup"
)

// Finder locates elements in the widget tree.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root core.Element) []core.Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []core.Element
	finder   Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Element {
	if len(r.elements) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no elements: %s", desc))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Widget returns the widget of the first matched element. Panics if no matches.
func (r FinderResult) Widget() core.Widget {
	return r.First().Widget()
}

// Markup returns the markup.Element configuring the first match, if any.
func (r FinderResult) Markup() (markup.Element, bool) {
	for _, e := range r.elements {
		if m, ok := e.Widget().(markup.Element); ok {
			return m, true
		}
	}
	return markup.Element{}, false
}

// Attr returns the value of the named attribute on the first markup match.
func (r FinderResult) Attr(name string) (string, bool) {
	m, ok := r.Markup()
	if !ok {
		return "", false
	}
	switch name {
	case "id":
		return m.ID, m.ID != ""
	case "class":
		return m.Class, m.Class != ""
	}
	for _, a := range m.Attrs {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the concatenated text rendered under the first match.
func (r FinderResult) Text() string {
	e := r.FirstOrNil()
	if e == nil {
		return ""
	}
	var sb strings.Builder
	for _, n := range core.Render(e) {
		sb.WriteString(NodeText(n))
	}
	return sb.String()
}

// NodeText returns the text content of n and its descendants.
func NodeText(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

type predicateFinder struct {
	desc  string
	match func(core.Element) bool
}

func (f predicateFinder) Evaluate(root core.Element) []core.Element {
	var out []core.Element
	core.Walk(root, func(e core.Element) bool {
		if f.match(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

func (f predicateFinder) Description() string { return f.desc }

// ByPredicate matches elements for which match returns true.
func ByPredicate(desc string, match func(core.Element) bool) Finder {
	return predicateFinder{desc: desc, match: match}
}

// ByType matches elements whose widget has type T.
func ByType[T core.Widget]() Finder {
	var zero T
	name := reflect.TypeOf(&zero).Elem().String()
	return predicateFinder{
		desc: "type " + name,
		match: func(e core.Element) bool {
			_, ok := e.Widget().(T)
			return ok
		},
	}
}

func markupMatch(desc string, match func(markup.Element) bool) Finder {
	return predicateFinder{
		desc: desc,
		match: func(e core.Element) bool {
			m, ok := e.Widget().(markup.Element)
			return ok && match(m)
		},
	}
}

// ByTag matches markup elements with the given tag name.
func ByTag(tag string) Finder {
	return markupMatch("tag <"+tag+">", func(m markup.Element) bool {
		return m.Tag == tag
	})
}

// ByID matches markup elements with the given id.
func ByID(id string) Finder {
	return markupMatch("id "+id, func(m markup.Element) bool {
		return m.ID == id
	})
}

// ByClass matches markup elements whose class list contains class.
func ByClass(class string) Finder {
	return markupMatch("class "+class, func(m markup.Element) bool {
		return slices.Contains(strings.Fields(m.Class), class)
	})
}

// ByText matches Text widgets whose content equals text.
func ByText(text string) Finder {
	return predicateFinder{
		desc: fmt.Sprintf("text %q", text),
		match: func(e core.Element) bool {
			t, ok := e.Widget().(markup.Text)
			return ok && t.Content == text
		},
	}
}
