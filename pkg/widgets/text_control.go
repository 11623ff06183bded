package widgets

import (
	"golang.org/x/net/html"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/markup"
)

// TextControl is a labeled, controlled text input.
//
//	TextControl{
//	    Label:       "Site title",
//	    Value:       s.title.Value(),
//	    OnChange:    s.title.Set,
//	    Placeholder: "My site",
//	}
type TextControl struct {
	core.StatelessBase

	// Label is shown above the input and derives its id.
	Label string
	// Value is the current text.
	Value string
	// OnChange receives the new text. Nil drops edits.
	OnChange func(value string)
	// Help is shown below the input.
	Help string
	// Placeholder is shown while the input is empty.
	Placeholder string
	// Type is the input type. Defaults to "text".
	Type string
	// Disabled renders the input disabled and drops edits.
	Disabled bool
	// ClassName is appended to the wrapper's classes.
	ClassName string
	// AutoComplete is emitted as the autocomplete attribute when set.
	AutoComplete string
}

// TextControlOf creates a text control with the given label, value and
// change handler.
func TextControlOf(label, value string, onChange func(string)) TextControl {
	return TextControl{Label: label, Value: value, OnChange: onChange}
}

// ID returns the input's id.
func (c TextControl) ID() string {
	return controlID("text", c.Label)
}

func (c TextControl) handleChange(value string) {
	if c.Disabled || c.OnChange == nil {
		return
	}
	c.OnChange(value)
}

func (c TextControl) Build(ctx core.BuildContext) core.Widget {
	id := c.ID()
	kind := c.Type
	if kind == "" {
		kind = "text"
	}

	attrs := []html.Attribute{
		markup.Attr("type", kind),
		markup.Attr("value", c.Value),
	}
	if c.Placeholder != "" {
		attrs = append(attrs, markup.Attr("placeholder", c.Placeholder))
	}
	if c.Disabled {
		attrs = append(attrs, markup.Attr("disabled", ""))
	}
	if c.AutoComplete != "" {
		attrs = append(attrs, markup.Attr("autocomplete", c.AutoComplete))
	}
	if c.Help != "" {
		attrs = append(attrs, markup.Attr("aria-describedby", helpID(id)))
	}

	children := []core.Widget{
		markup.Element{
			Tag:      "label",
			Class:    "text-control__label",
			Attrs:    []html.Attribute{markup.Attr("for", id)},
			Children: []core.Widget{markup.TextOf(c.Label)},
		},
		markup.Element{
			Tag:      "input",
			ID:       id,
			Class:    "text-control__input",
			Attrs:    attrs,
			OnChange: c.handleChange,
		},
	}
	if c.Help != "" {
		children = append(children, markup.Element{
			Tag:      "p",
			ID:       helpID(id),
			Class:    "text-control__help",
			Children: []core.Widget{markup.TextOf(c.Help)},
		})
	}

	class := markup.Classes("text-control", c.ClassName)
	if c.Disabled {
		class = markup.Classes(class, "text-control--disabled")
	}
	return markup.Element{Tag: "div", Class: class, Children: children}
}
