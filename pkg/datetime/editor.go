package datetime

import "time"

// Editor applies sub-input edits to a timestamp. The zero value reads
// times in time.Local and takes today's date from the wall clock.
type Editor struct {
	// Location is the zone used to read time-of-day and today's date.
	// Nil means time.Local.
	Location *time.Location

	// Now returns the current instant. Nil means time.Now.
	Now func() time.Time
}

func (e Editor) location() *time.Location {
	if e.Location == nil {
		return time.Local
	}
	return e.Location
}

// Today returns the current date in the editor's location. Use time.UTC
// as Location for the UTC calendar date.
func (e Editor) Today() string {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return now().In(e.location()).Format(DateLayout)
}

// EditDate returns the timestamp produced by replacing the date of current
// with newDate. The time-of-day of current is kept, or DefaultTime when
// current has none. An empty newDate yields "".
func (e Editor) EditDate(current, newDate string) string {
	return Combine(newDate, TimePart(current, e.location()))
}

// EditTime returns the timestamp produced by replacing the time-of-day of
// current with newTime. The date of current is kept, or today's date when
// current has none.
func (e Editor) EditTime(current, newTime string) string {
	date := DatePart(current)
	if date == "" {
		date = e.Today()
	}
	return Combine(date, newTime)
}

// Split returns the date and time parts of iso in the editor's location.
func (e Editor) Split(iso string) (date, hhmm string) {
	return Split(iso, e.location())
}

// EditDate is Editor{}.EditDate.
func EditDate(current, newDate string) string {
	return Editor{}.EditDate(current, newDate)
}

// EditTime is Editor{}.EditTime.
func EditTime(current, newTime string) string {
	return Editor{}.EditTime(current, newTime)
}

// Mode selects which sub-inputs a composite editor shows.
type Mode int

const (
	// ModeBoth shows the date and time sub-inputs.
	ModeBoth Mode = iota
	// ModeDateOnly shows only the date sub-input.
	ModeDateOnly
	// ModeTimeOnly shows only the time sub-input.
	ModeTimeOnly
)

func (m Mode) String() string {
	switch m {
	case ModeDateOnly:
		return "date"
	case ModeTimeOnly:
		return "time"
	default:
		return "both"
	}
}

// ShowsDate reports whether the date sub-input is visible.
func (m Mode) ShowsDate() bool { return m != ModeTimeOnly }

// ShowsTime reports whether the time sub-input is visible.
func (m Mode) ShowsTime() bool { return m != ModeDateOnly }

// ModeOf maps the dateOnly/timeOnly flag pair to a Mode. At most one flag may
// be set; when both are, ModeBoth is returned with ErrConflictingModes.
func ModeOf(dateOnly, timeOnly bool) (Mode, error) {
	switch {
	case dateOnly && timeOnly:
		return ModeBoth, ErrConflictingModes
	case dateOnly:
		return ModeDateOnly, nil
	case timeOnly:
		return ModeTimeOnly, nil
	default:
		return ModeBoth, nil
	}
}
