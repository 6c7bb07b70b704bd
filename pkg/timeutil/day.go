// Package timeutil holds the date-key and identifier conventions shared by
// the domain model and the calendar.
package timeutil

import (
	"strconv"
	"time"
)

// LayoutDay is the zero-padded date key used for deadlines and calendar
// lookups. Keys compare correctly as plain strings.
const LayoutDay = "2006-01-02"

// DayKey formats a time as its calendar date key.
func DayKey(t time.Time) string {
	return t.Format(LayoutDay)
}

// ParseDay parses a YYYY-MM-DD date key.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(LayoutDay, s)
}

// NewID derives an opaque record identifier from a creation time.
func NewID(t time.Time) string {
	return strconv.FormatInt(t.UnixNano(), 16)
}
