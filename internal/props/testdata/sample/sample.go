package sample

import "time"

type base struct{}

// Picker is a sample component.
type Picker struct {
	base

	// Label is the heading text.
	Label string `docs:"required"`
	// Size of the control. Defaults to "medium".
	Size string
	Step float64 `default:"1"` // Step between values.
	// OnChange receives edits.
	OnChange func(value string)
	Now      func() time.Time
	hidden   bool
	A, B     int
}

type Mode int
