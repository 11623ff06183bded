package widgets

import (
	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/markup"
)

// Card groups content under an optional header.
type Card struct {
	core.StatelessBase
	Title    string
	Children []core.Widget
}

func (c Card) Build(ctx core.BuildContext) core.Widget {
	var children []core.Widget
	if c.Title != "" {
		children = append(children, markup.Element{
			Tag:      "div",
			Class:    "card__header",
			Children: []core.Widget{markup.TextOf(c.Title)},
		})
	}
	children = append(children, markup.Element{Tag: "div", Class: "card__body", Children: c.Children})
	return markup.Element{Tag: "div", Class: "card", Children: children}
}
