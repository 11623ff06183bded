package core

import (
	"strings"

	"golang.org/x/net/html"
)

// Event types delivered to EventTarget widgets.
const (
	EventChange = "change"
	EventClick  = "click"
)

// Event is a user interaction with a rendered control. Value carries the
// control's new value for change events.
type Event struct {
	Type  string
	Value string
}

// MarkupWidget produces HTML nodes. Children are built and rendered by the
// framework and handed back to RenderMarkup, which must return fresh nodes
// with no parent.
type MarkupWidget interface {
	Widget
	ChildWidgets() []Widget
	RenderMarkup(children []*html.Node) []*html.Node
}

// EventTarget is implemented by markup widgets that react to user input.
type EventTarget interface {
	HandleEvent(event Event) bool
}

// Render returns the HTML nodes produced by the tree rooted at root.
func Render(root Element) []*html.Node {
	if root == nil {
		return nil
	}
	if m, ok := root.(*MarkupElement); ok {
		var children []*html.Node
		m.VisitChildren(func(child Element) bool {
			children = append(children, Render(child)...)
			return true
		})
		return m.widget.(MarkupWidget).RenderMarkup(children)
	}
	var nodes []*html.Node
	root.VisitChildren(func(child Element) bool {
		nodes = append(nodes, Render(child)...)
		return true
	})
	return nodes
}

// RenderString renders the tree rooted at root as an HTML fragment.
func RenderString(root Element) (string, error) {
	var sb strings.Builder
	for _, node := range Render(root) {
		if err := html.Render(&sb, node); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// Walk visits root and its descendants depth-first until visit returns false.
func Walk(root Element, visit func(Element) bool) bool {
	if root == nil {
		return true
	}
	if !visit(root) {
		return false
	}
	cont := true
	root.VisitChildren(func(child Element) bool {
		cont = Walk(child, visit)
		return cont
	})
	return cont
}
