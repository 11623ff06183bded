package widgets

import (
	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/markup"
)

// PropDef documents one property of a component.
type PropDef struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Default     string `yaml:"default,omitempty" json:"default,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
}

// PropsTable renders property documentation as a table, one row per
// PropDef in order.
type PropsTable struct {
	core.StatelessBase
	Props []PropDef
}

var propsColumns = []string{"Prop", "Type", "Default", "Required", "Description"}

func (p PropsTable) Build(ctx core.BuildContext) core.Widget {
	head := make([]core.Widget, len(propsColumns))
	for i, name := range propsColumns {
		head[i] = cell("th", markup.TextOf(name))
	}

	rows := make([]core.Widget, 0, len(p.Props))
	for _, prop := range p.Props {
		var def core.Widget = markup.TextOf("—")
		if prop.Default != "" {
			def = code(prop.Default)
		}
		required := "No"
		if prop.Required {
			required = "Yes"
		}
		rows = append(rows, markup.Element{
			Tag: "tr",
			Children: []core.Widget{
				cell("td", code(prop.Name)),
				cell("td", code(prop.Type)),
				cell("td", def),
				cell("td", markup.TextOf(required)),
				cell("td", markup.TextOf(prop.Description)),
			},
		})
	}

	return markup.Element{
		Tag:   "div",
		Class: "props-table-wrapper",
		Children: []core.Widget{
			markup.Element{
				Tag:   "table",
				Class: "props-table",
				Children: []core.Widget{
					markup.Element{Tag: "thead", Children: []core.Widget{
						markup.Element{Tag: "tr", Children: head},
					}},
					markup.Element{Tag: "tbody", Children: rows},
				},
			},
		},
	}
}

func cell(tag string, content core.Widget) core.Widget {
	return markup.Element{Tag: tag, Children: []core.Widget{content}}
}

func code(text string) core.Widget {
	return markup.Element{Tag: "code", Children: []core.Widget{markup.TextOf(text)}}
}
