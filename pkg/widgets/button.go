package widgets

import (
	"golang.org/x/net/html"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/markup"
)

// Button variants and sizes.
const (
	ButtonPrimary   = "primary"
	ButtonSecondary = "secondary"
	ButtonOutline   = "outline"

	ButtonSmall  = "small"
	ButtonMedium = "medium"
	ButtonLarge  = "large"
)

// Button is a clickable button.
//
// Example using struct literal:
//
//	Button{
//	    Variant:  ButtonOutline,
//	    OnClick:  handleReset,
//	    Disabled: !dirty,
//	    Children: []core.Widget{markup.TextOf("Reset")},
//	}
//
// Example using XxxOf helper:
//
//	ButtonOf("Reset", handleReset).WithSize(ButtonSmall)
type Button struct {
	core.StatelessBase

	// Variant is one of primary, secondary or outline. Defaults to primary.
	Variant string
	// Size is one of small, medium or large. Defaults to medium.
	Size string
	// Disabled renders the button disabled and ignores clicks.
	Disabled bool
	// OnClick is called when the button is clicked.
	OnClick  func()
	Children []core.Widget
}

// ButtonOf creates a primary, medium button with a text label.
func ButtonOf(label string, onClick func()) Button {
	return Button{OnClick: onClick, Children: []core.Widget{markup.TextOf(label)}}
}

// WithVariant returns a copy of the button with the given variant.
func (b Button) WithVariant(variant string) Button {
	b.Variant = variant
	return b
}

// WithSize returns a copy of the button with the given size.
func (b Button) WithSize(size string) Button {
	b.Size = size
	return b
}

// WithDisabled returns a copy of the button with the specified disabled state.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

func (b Button) Build(ctx core.BuildContext) core.Widget {
	variant := b.Variant
	if variant == "" {
		variant = ButtonPrimary
	}
	size := b.Size
	if size == "" {
		size = ButtonMedium
	}

	attrs := []html.Attribute{markup.Attr("type", "button")}
	onClick := b.OnClick
	if b.Disabled {
		attrs = append(attrs, markup.Attr("disabled", ""))
		onClick = nil
	}

	return markup.Element{
		Tag:      "button",
		Class:    markup.Classes("btn", "btn--"+variant, "btn--"+size),
		Attrs:    attrs,
		Children: b.Children,
		OnClick:  onClick,
	}
}
