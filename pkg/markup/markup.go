// Package markup provides the leaf widgets that turn a widget tree into
// HTML nodes.
package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/errors"
)

// Element renders a single HTML element around its children.
type Element struct {
	core.MarkupBase

	// Tag is the element name, e.g. "div" or "input".
	Tag string
	// ID is emitted as the id attribute when non-empty.
	ID string
	// Class is emitted as the class attribute when non-empty.
	Class string
	// Attrs are emitted after id and class, in order.
	Attrs []html.Attribute
	// Children are rendered inside the element. Void elements must have none.
	Children []core.Widget

	// OnChange receives the new value of a form control.
	OnChange func(value string)
	// OnClick is called when the element is activated.
	OnClick func()
}

func (e Element) ChildWidgets() []core.Widget {
	return e.Children
}

func (e Element) RenderMarkup(children []*html.Node) []*html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: atom.Lookup([]byte(e.Tag)),
	}
	if e.ID != "" {
		node.Attr = append(node.Attr, Attr("id", e.ID))
	}
	if e.Class != "" {
		node.Attr = append(node.Attr, Attr("class", e.Class))
	}
	node.Attr = append(node.Attr, e.Attrs...)
	for _, child := range children {
		node.AppendChild(child)
	}
	return []*html.Node{node}
}

func (e Element) HandleEvent(event core.Event) bool {
	switch event.Type {
	case core.EventChange:
		if e.OnChange == nil {
			return false
		}
		e.OnChange(event.Value)
		return true
	case core.EventClick:
		if e.OnClick == nil {
			return false
		}
		e.OnClick()
		return true
	}
	return false
}

// Text renders escaped character data.
type Text struct {
	core.MarkupBase
	Content string
}

func (Text) ChildWidgets() []core.Widget { return nil }

func (t Text) RenderMarkup([]*html.Node) []*html.Node {
	return []*html.Node{{Type: html.TextNode, Data: t.Content}}
}

// Raw renders trusted HTML as parsed nodes. Input that cannot be parsed is
// reported and renders nothing.
type Raw struct {
	core.MarkupBase
	HTML string
}

func (Raw) ChildWidgets() []core.Widget { return nil }

func (r Raw) RenderMarkup([]*html.Node) []*html.Node {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(r.HTML), context)
	if err != nil {
		errors.Report(&errors.DocsError{Op: "markup.Raw", Kind: errors.KindParse, Err: err})
		return nil
	}
	return nodes
}

// Fragment renders its children with no wrapping element.
type Fragment struct {
	core.MarkupBase
	Children []core.Widget
}

func (f Fragment) ChildWidgets() []core.Widget { return f.Children }

func (Fragment) RenderMarkup(children []*html.Node) []*html.Node {
	return children
}

// Attr returns an attribute with the given name and value.
func Attr(name, value string) html.Attribute {
	return html.Attribute{Key: name, Val: value}
}

// Classes joins the non-empty class names with single spaces.
func Classes(names ...string) string {
	var kept []string
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			kept = append(kept, name)
		}
	}
	return strings.Join(kept, " ")
}

// TextOf is shorthand for a Text widget.
func TextOf(content string) Text {
	return Text{Content: content}
}
