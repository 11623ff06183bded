package widgets

import (
	"golang.org/x/net/html"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/markup"
)

// Alert variants.
const (
	AlertInfo    = "info"
	AlertWarning = "warning"
	AlertSuccess = "success"
	AlertError   = "error"
)

var alertIcons = map[string]string{
	AlertInfo:    "i",
	AlertWarning: "!",
	AlertSuccess: "✓",
	AlertError:   "✗",
}

// Alert is a callout box. Unknown variants keep their class but show the
// info icon.
type Alert struct {
	core.StatelessBase

	// Variant is one of the Alert* constants. Defaults to AlertInfo.
	Variant string
	// Title is an optional heading.
	Title    string
	Children []core.Widget
}

// AlertOf creates an alert with a plain text body.
func AlertOf(variant, title, body string) Alert {
	return Alert{Variant: variant, Title: title, Children: []core.Widget{markup.TextOf(body)}}
}

func (a Alert) Build(ctx core.BuildContext) core.Widget {
	variant := a.Variant
	if variant == "" {
		variant = AlertInfo
	}
	icon, ok := alertIcons[variant]
	if !ok {
		icon = alertIcons[AlertInfo]
	}

	var content []core.Widget
	if a.Title != "" {
		content = append(content, markup.Element{
			Tag:      "strong",
			Class:    "alert__title",
			Children: []core.Widget{markup.TextOf(a.Title)},
		})
	}
	content = append(content, markup.Element{Tag: "div", Class: "alert__body", Children: a.Children})

	return markup.Element{
		Tag:   "div",
		Class: markup.Classes("alert", "alert--"+variant),
		Attrs: []html.Attribute{markup.Attr("role", "alert")},
		Children: []core.Widget{
			markup.Element{Tag: "span", Class: "alert__icon", Children: []core.Widget{markup.TextOf(icon)}},
			markup.Element{Tag: "div", Class: "alert__content", Children: content},
		},
	}
}
