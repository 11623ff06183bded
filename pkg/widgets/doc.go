// Package widgets provides the documentation components of docskit.
//
// Form controls (DateTimePicker, TextControl, RangeControl) are controlled:
// the owner supplies the current value and receives edits through OnChange.
// A control with Disabled set or a nil OnChange drops edits. Element ids are
// derived from the label, so "Publish Date" on a DateTimePicker yields
// "datetime-publish-date".
//
// Presentational components (Alert, Card, Button, CodeBlock, PropsTable,
// Markdown) take plain data and render markup.
//
// # Widget Construction
//
// Struct literals are the canonical form:
//
//	picker := DateTimePicker{
//	    Label:    "Publish",
//	    Value:    value,
//	    OnChange: onChange,
//	    Help:     "Leave empty to publish now.",
//	}
//
// A few widgets have XxxOf helpers and WithX methods for the common cases:
//
//	ButtonOf("Reset", reset).WithVariant(ButtonOutline)
package widgets
