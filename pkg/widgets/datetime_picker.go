package widgets

import (
	"golang.org/x/net/html"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/datetime"
	"github.com/go-drift/docskit/pkg/errors"
	"github.com/go-drift/docskit/pkg/markup"
)

// DateTimePicker edits one timestamp through a native date input and a
// native time input.
//
// The picker is controlled: it holds no value of its own. Every edit is
// combined with the untouched half of the current value and handed to
// OnChange, and the owner passes the result back as Value on the next build.
//
//	DateTimePicker{
//	    Label:    "Publish",
//	    Value:    s.publish.Value(),
//	    OnChange: s.publish.Set,
//	}
//
// Editing the date of "2024-03-05T14:30:00" to "2024-03-10" emits
// "2024-03-10T14:30:00". Clearing the date emits "".
type DateTimePicker struct {
	core.StatelessBase

	// Label is shown above the inputs and derives the element ids.
	Label string
	// Value is the current timestamp in YYYY-MM-DDTHH:MM:SS form.
	Value string
	// CurrentDate is used in place of Value when Value is empty.
	CurrentDate string
	// OnChange receives the new timestamp. Nil drops edits.
	OnChange func(value string)
	// Is12Hour marks the time input for 12-hour display.
	Is12Hour bool
	// Help is shown below the inputs and linked with aria-describedby.
	Help string
	// Disabled renders the inputs disabled and drops edits.
	Disabled bool
	// ClassName is appended to the wrapper's classes.
	ClassName string
	// DateOnly hides the time input.
	DateOnly bool
	// TimeOnly hides the date input.
	TimeOnly bool
	// Editor controls the zone and clock used to read the value. The zero
	// value uses time.Local and the wall clock.
	Editor datetime.Editor
}

// DateTimePickerOf creates a picker showing both inputs.
func DateTimePickerOf(label, value string, onChange func(string)) DateTimePicker {
	return DateTimePicker{Label: label, Value: value, OnChange: onChange}
}

// WithHelp returns a copy of the picker with the given help text.
func (d DateTimePicker) WithHelp(help string) DateTimePicker {
	d.Help = help
	return d
}

// WithDisabled returns a copy of the picker with the given disabled state.
func (d DateTimePicker) WithDisabled(disabled bool) DateTimePicker {
	d.Disabled = disabled
	return d
}

// WithEditor returns a copy of the picker reading values through editor.
func (d DateTimePicker) WithEditor(editor datetime.Editor) DateTimePicker {
	d.Editor = editor
	return d
}

// ID returns the id of the picker's primary input.
func (d DateTimePicker) ID() string {
	return controlID("datetime", d.Label)
}

// Controlled returns the timestamp the picker currently displays.
func (d DateTimePicker) Controlled() string {
	if d.Value != "" {
		return d.Value
	}
	return d.CurrentDate
}

// Mode reports which inputs the picker shows. Setting both DateOnly and
// TimeOnly is reported and shows both inputs, rather than hiding both as
// reading each flag on its own would.
func (d DateTimePicker) Mode() datetime.Mode {
	mode, err := datetime.ModeOf(d.DateOnly, d.TimeOnly)
	if err != nil {
		errors.Report(&errors.DocsError{
			Op:   "widgets.DateTimePicker",
			Kind: errors.KindConfig,
			Key:  d.ID(),
			Err:  err,
		})
	}
	return mode
}

func (d DateTimePicker) handleDateChange(newDate string) {
	if d.Disabled || d.OnChange == nil {
		return
	}
	d.OnChange(d.Editor.EditDate(d.Controlled(), newDate))
}

func (d DateTimePicker) handleTimeChange(newTime string) {
	if d.Disabled || d.OnChange == nil {
		return
	}
	d.OnChange(d.Editor.EditTime(d.Controlled(), newTime))
}

func (d DateTimePicker) Build(ctx core.BuildContext) core.Widget {
	id := d.ID()
	mode := d.Mode()
	date, hhmm := d.Editor.Split(d.Controlled())

	var fields []core.Widget
	if mode.ShowsDate() {
		ariaLabel := "Date"
		if d.Label != "" {
			ariaLabel = d.Label + " date"
		}
		fields = append(fields, markup.Element{
			Tag:      "input",
			ID:       id,
			Class:    "date-time-picker__date",
			Attrs:    d.inputAttrs("date", date, ariaLabel, id),
			OnChange: d.handleDateChange,
		})
	}
	if mode.ShowsTime() {
		timeID := id + "-time"
		if mode == datetime.ModeTimeOnly {
			timeID = id
		}
		ariaLabel := "Time"
		if d.Label != "" {
			ariaLabel = d.Label + " time"
		}
		class := "date-time-picker__time"
		if d.Is12Hour {
			class = markup.Classes(class, "date-time-picker__time--12h")
		}
		fields = append(fields, markup.Element{
			Tag:      "input",
			ID:       timeID,
			Class:    class,
			Attrs:    d.inputAttrs("time", hhmm, ariaLabel, id),
			OnChange: d.handleTimeChange,
		})
	}

	var children []core.Widget
	if d.Label != "" {
		children = append(children, markup.Element{
			Tag:      "span",
			Class:    "date-time-picker__label",
			Children: []core.Widget{markup.TextOf(d.Label)},
		})
	}
	children = append(children, markup.Element{
		Tag:      "div",
		Class:    "date-time-picker__fields",
		Children: fields,
	})
	if d.Help != "" {
		children = append(children, markup.Element{
			Tag:      "p",
			ID:       helpID(id),
			Class:    "date-time-picker__help",
			Children: []core.Widget{markup.TextOf(d.Help)},
		})
	}

	class := markup.Classes("date-time-picker", d.ClassName)
	if d.Disabled {
		class = markup.Classes(class, "date-time-picker--disabled")
	}
	return markup.Element{Tag: "div", Class: class, Children: children}
}

func (d DateTimePicker) inputAttrs(kind, value, ariaLabel, id string) []html.Attribute {
	attrs := []html.Attribute{
		markup.Attr("type", kind),
		markup.Attr("value", value),
	}
	if d.Disabled {
		attrs = append(attrs, markup.Attr("disabled", ""))
	}
	attrs = append(attrs, markup.Attr("aria-label", ariaLabel))
	if d.Help != "" {
		attrs = append(attrs, markup.Attr("aria-describedby", helpID(id)))
	}
	return attrs
}
