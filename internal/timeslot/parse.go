package timeslot

import (
	"regexp"
	"strings"
	"time"
)

// separator between the two sides of an opening-hours string, e.g. "0700 - 2300".
const openingHoursSep = " - "

// hhmmRegexp matches a 4-digit hour-minute token. Only the shape is checked;
// physically impossible values like "2500" pass and resolve to slot 0 via the
// table lookup. Range validation here would reject venue records that the rest
// of the system already tolerates.
var hhmmRegexp = regexp.MustCompile(`^\d{4}$`)

// ParseOpeningHours parses an opening-hours string of the form "HHMM - HHMM"
// into the slot indices of its two boundaries. If either side fails the
// structural check, ok is false and both indices are zero; partial results are
// never returned. A side that is well-formed but does not start any slot
// resolves to 0.
func ParseOpeningHours(text string) (start, end int, ok bool) {
	first, second, found := splitOpeningHours(text)
	if !found {
		return 0, 0, false
	}
	return ClockToSlot(first), ClockToSlot(second), true
}

// ParseOpeningHoursISO combines a calendar date with an opening-hours string
// into local ISO-8601 timestamps without a zone suffix, e.g.
// "2022-06-16T07:00:00". The zero date or a malformed text invalidates the
// whole result: ok is false and both strings are empty.
func ParseOpeningHoursISO(date time.Time, text string) (startISO, endISO string, ok bool) {
	if date.IsZero() {
		return "", "", false
	}
	first, second, found := splitOpeningHours(text)
	if !found {
		return "", "", false
	}
	day := date.Format("2006-01-02")
	return day + "T" + first[:2] + ":" + first[2:] + ":00",
		day + "T" + second[:2] + ":" + second[2:] + ":00",
		true
}

// splitOpeningHours splits "HHMM - HHMM" and validates both sides structurally.
func splitOpeningHours(text string) (first, second string, ok bool) {
	parts := strings.SplitN(text, openingHoursSep, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	first = strings.TrimSpace(parts[0])
	second = strings.TrimSpace(parts[1])
	if !hhmmRegexp.MatchString(first) || !hhmmRegexp.MatchString(second) {
		return "", "", false
	}
	return first, second, true
}
