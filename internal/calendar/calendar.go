// Package calendar provides the alternate-calendar capability used by the
// period report: converting timestamps into Bikram Sambat dates.
//
// The converter is an injected collaborator. Callers must treat it as
// optional and per-call fallible: a record whose date cannot be converted is
// excluded from calendar-dependent outputs, never a reason to abort.
package calendar

import "time"

// Date is a civil date in the alternate calendar. Month is 1-based.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Converter turns timestamps into alternate-calendar dates.
type Converter interface {
	// FromTime converts the civil date of t. It returns an error for
	// timestamps the implementation cannot represent.
	FromTime(t time.Time) (Date, error)

	// MonthNames returns the twelve month names in calendar order.
	MonthNames() []string

	// Today returns the current date in the alternate calendar.
	Today() (Date, error)
}
