package widgets

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/markup"
)

// RangeControl is a labeled slider with an optional number field.
//
// Min and Max default to 0 and 100 when both are zero. Step defaults to 1
// when not positive. Edits that are not numbers are dropped.
type RangeControl struct {
	core.StatelessBase

	// Label is shown above the slider and derives its id.
	Label string
	// Value is the current number.
	Value float64
	// OnChange receives the new number. Nil drops edits.
	OnChange func(value float64)
	Min      float64
	Max      float64
	Step     float64
	// Help is shown below the slider.
	Help string
	// Disabled renders both inputs disabled and drops edits.
	Disabled bool
	// ClassName is appended to the wrapper's classes.
	ClassName string
	// HideInputField omits the number field next to the label.
	HideInputField bool
}

// ID returns the slider's id.
func (r RangeControl) ID() string {
	return controlID("range", r.Label)
}

// Bounds returns the effective minimum, maximum and step.
func (r RangeControl) Bounds() (minimum, maximum, step float64) {
	minimum, maximum, step = r.Min, r.Max, r.Step
	if minimum == 0 && maximum == 0 {
		maximum = 100
	}
	if step <= 0 {
		step = 1
	}
	return minimum, maximum, step
}

func (r RangeControl) handleChange(raw string) {
	if r.Disabled || r.OnChange == nil {
		return
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return
	}
	r.OnChange(v)
}

func (r RangeControl) numericAttrs(kind string) []html.Attribute {
	minimum, maximum, step := r.Bounds()
	attrs := []html.Attribute{
		markup.Attr("type", kind),
		markup.Attr("value", formatNumber(r.Value)),
		markup.Attr("min", formatNumber(minimum)),
		markup.Attr("max", formatNumber(maximum)),
		markup.Attr("step", formatNumber(step)),
	}
	if r.Disabled {
		attrs = append(attrs, markup.Attr("disabled", ""))
	}
	return attrs
}

func (r RangeControl) Build(ctx core.BuildContext) core.Widget {
	id := r.ID()
	minimum, maximum, _ := r.Bounds()

	header := []core.Widget{
		markup.Element{
			Tag:      "label",
			Class:    "range-control__label",
			Attrs:    []html.Attribute{markup.Attr("for", id)},
			Children: []core.Widget{markup.TextOf(r.Label)},
		},
	}
	if !r.HideInputField {
		header = append(header, markup.Element{
			Tag:      "input",
			Class:    "range-control__input",
			Attrs:    append(r.numericAttrs("number"), markup.Attr("aria-label", r.Label+" value")),
			OnChange: r.handleChange,
		})
	}

	sliderAttrs := r.numericAttrs("range")
	if r.Help != "" {
		sliderAttrs = append(sliderAttrs, markup.Attr("aria-describedby", helpID(id)))
	}

	children := []core.Widget{
		markup.Element{Tag: "div", Class: "range-control__header", Children: header},
		markup.Element{
			Tag:      "input",
			ID:       id,
			Class:    "range-control__slider",
			Attrs:    sliderAttrs,
			OnChange: r.handleChange,
		},
		markup.Element{
			Tag:   "div",
			Class: "range-control__limits",
			Attrs: []html.Attribute{markup.Attr("aria-hidden", "true")},
			Children: []core.Widget{
				markup.Element{Tag: "span", Children: []core.Widget{markup.TextOf(formatNumber(minimum))}},
				markup.Element{Tag: "span", Children: []core.Widget{markup.TextOf(formatNumber(maximum))}},
			},
		},
	}
	if r.Help != "" {
		children = append(children, markup.Element{
			Tag:      "p",
			ID:       helpID(id),
			Class:    "range-control__help",
			Children: []core.Widget{markup.TextOf(r.Help)},
		})
	}

	class := markup.Classes("range-control", r.ClassName)
	if r.Disabled {
		class = markup.Classes(class, "range-control--disabled")
	}
	return markup.Element{Tag: "div", Class: class, Children: children}
}
