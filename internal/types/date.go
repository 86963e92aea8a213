// README: Common calendar-date helpers used across modules.
package types

import "time"

// DateLayout is the wire and storage format for all dates (ISO 8601 day).
const DateLayout = "2006-01-02"

// ParseDate parses an ISO YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Day truncates t to midnight in its own location so two timestamps on the
// same calendar day compare equal.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayBefore reports whether a falls on an earlier calendar day than b. Each
// value's day is read in its own location, so a date parsed at UTC midnight
// compares correctly against a local wall clock.
func DayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
