// Package timeslot maps the bookable day onto discrete half-hour slots and
// implements the slot-set operations used by the booking conflict check.
//
// The day runs from 07:00 to midnight in 34 contiguous slots. Slot 1 covers
// [07:00, 07:30), slot 34 covers [23:30, 00:00). All functions are pure and
// safe for concurrent use.
package timeslot

import "fmt"

const (
	// SlotCount is the number of bookable slots in a day.
	SlotCount = 34
	// SlotMinutes is the width of each slot.
	SlotMinutes = 30
	// dayStartMinutes is the offset of slot 1 from midnight (07:00).
	dayStartMinutes = 7 * 60
)

// Clock is the half-open clock interval [Start, End) of a slot,
// as zero-padded 24-hour HHMM strings. The final slot ends at "0000".
type Clock struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

var (
	clockBySlot [SlotCount + 1]Clock
	slotByStart map[string]int
)

func init() {
	slotByStart = make(map[string]int, SlotCount)
	for s := 1; s <= SlotCount; s++ {
		start := dayStartMinutes + (s-1)*SlotMinutes
		end := start + SlotMinutes
		c := Clock{Start: hhmm(start), End: hhmm(end)}
		clockBySlot[s] = c
		slotByStart[c.Start] = s
	}
}

func hhmm(minutes int) string {
	minutes = minutes % (24 * 60)
	return fmt.Sprintf("%02d%02d", minutes/60, minutes%60)
}

// SlotToClock returns the clock interval for the given slot index.
// ok is false for indices outside [1, SlotCount].
func SlotToClock(slot int) (Clock, bool) {
	if slot < 1 || slot > SlotCount {
		return Clock{}, false
	}
	return clockBySlot[slot], true
}

// ClockToSlot returns the slot index whose interval starts at the given HHMM
// string, or 0 if no slot starts there.
func ClockToSlot(start string) int {
	return slotByStart[start]
}
