// Package calendardate converts between calendar dates and their canonical
// Unix-timestamp-at-midnight representation in the hall's reference timezone.
//
// A fixed UTC+8 offset is used instead of the host zone so that the same date
// string always normalizes to the same timestamp regardless of where the
// process runs.
package calendardate

import "time"

// Layout is the accepted calendar-date format.
const Layout = "2006-01-02"

// Location is the fixed reference timezone for all canonical dates.
var Location = time.FixedZone("+08", 8*60*60)

// now is swapped out by tests to pin the clock.
var now = time.Now

// maxDriftYears bounds how far a stored timestamp may sit from the current
// date before it is treated as corrupted (wrong unit or epoch).
const maxDriftYears = 1

// ToUnixDay parses a strict "YYYY-MM-DD" date and returns the Unix timestamp
// at local midnight in the reference timezone. Malformed input returns 0, the
// caller-checked sentinel, never an error.
func ToUnixDay(date string) int64 {
	t, err := time.ParseInLocation(Layout, date, Location)
	if err != nil {
		return 0
	}
	return t.Unix()
}

// FromUnixDay converts a canonical timestamp back to a date in the reference
// timezone. Negative timestamps are rejected. A result more than a year from
// the current date in either direction is treated as corrupted input and
// rejected rather than propagated.
func FromUnixDay(ts int64) (time.Time, bool) {
	if ts < 0 {
		return time.Time{}, false
	}
	t := time.Unix(ts, 0).In(Location)
	n := now().In(Location)
	if t.After(n.AddDate(maxDriftYears, 0, 0)) || t.Before(n.AddDate(-maxDriftYears, 0, 0)) {
		return time.Time{}, false
	}
	return t, true
}

// IsSameOrAfter reports whether the date encoded by ts is on or after the
// current date plus offsetDays. Used to enforce the minimum lead time on
// booking requests. Invalid timestamps are never "same or after".
func IsSameOrAfter(ts int64, offsetDays int) bool {
	d, ok := FromUnixDay(ts)
	if !ok {
		return false
	}
	cutoff := startOfDay(now().In(Location)).AddDate(0, 0, offsetDays)
	return !cutoff.After(startOfDay(d))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location)
}
