// Package datetime reconciles edits to the date and time halves of a single
// timestamp value.
//
// A timestamp is a naive local string of the form YYYY-MM-DDTHH:MM:SS. The
// owner of the value supplies it on every build and receives the new value
// from EditDate or EditTime; nothing in this package retains state between
// calls.
//
//	ed := datetime.Editor{}
//	next := ed.EditDate("2024-03-05T14:30:00", "2024-03-10")
//	// next == "2024-03-10T14:30:00"
package datetime

import (
	"errors"
	"time"
)

// DefaultTime is the time-of-day used when a timestamp carries none.
const DefaultTime = "00:00"

// DateLayout is the layout of a date part (the first 10 characters).
const DateLayout = "2006-01-02"

// ErrConflictingModes is returned by ModeOf when both date-only and
// time-only are requested.
var ErrConflictingModes = errors.New("datetime: dateOnly and timeOnly are mutually exclusive")

// naiveLayouts are timestamp forms without a zone offset. They are read in
// the editor's location.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// DatePart returns the date portion of iso: its first 10 characters.
// The value is not validated, so "2024-13-40T00:00:00" yields "2024-13-40".
// Strings shorter than 10 characters are returned whole.
func DatePart(iso string) string {
	if len(iso) <= len(DateLayout) {
		return iso
	}
	return iso[:len(DateLayout)]
}

// TimePart returns the HH:MM time-of-day of iso as seen in loc, or "" when
// iso cannot be parsed as a date-time. A nil loc means time.Local.
//
// Offset-qualified strings are converted into loc. A bare date is taken as
// UTC midnight, so its time-of-day in loc is the zone's offset from UTC.
func TimePart(iso string, loc *time.Location) string {
	t, ok := parse(iso, loc)
	if !ok {
		return ""
	}
	return t.Format("15:04")
}

// Combine joins a date part and an HH:MM time part into a timestamp.
// An empty date yields "" because a timestamp without a date cannot be
// built. An empty time falls back to DefaultTime.
func Combine(date, hhmm string) string {
	if date == "" {
		return ""
	}
	if hhmm == "" {
		hhmm = DefaultTime
	}
	return date + "T" + hhmm + ":00"
}

// Split returns both halves of iso as the sub-inputs would display them.
func Split(iso string, loc *time.Location) (date, hhmm string) {
	return DatePart(iso), TimePart(iso, loc)
}

func parse(iso string, loc *time.Location) (time.Time, bool) {
	if iso == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339Nano, iso); err == nil {
		return t.In(loc), true
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, iso, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.ParseInLocation(DateLayout, iso, time.UTC); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}
