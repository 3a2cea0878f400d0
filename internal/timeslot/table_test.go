package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotToClock_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		slot   int
		want   Clock
		wantOK bool
	}{
		{name: "first slot", slot: 1, want: Clock{Start: "0700", End: "0730"}, wantOK: true},
		{name: "mid morning", slot: 9, want: Clock{Start: "1100", End: "1130"}, wantOK: true},
		{name: "last slot wraps to midnight", slot: 34, want: Clock{Start: "2330", End: "0000"}, wantOK: true},
		{name: "zero", slot: 0, wantOK: false},
		{name: "negative", slot: -3, wantOK: false},
		{name: "past end of day", slot: 35, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SlotToClock(tt.slot)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockToSlot(t *testing.T) {
	assert.Equal(t, 1, ClockToSlot("0700"))
	assert.Equal(t, 34, ClockToSlot("2330"))
	assert.Equal(t, 33, ClockToSlot("2300"))

	// Non-boundary and unmapped inputs resolve to the not-found sentinel.
	assert.Equal(t, 0, ClockToSlot("0715"))
	assert.Equal(t, 0, ClockToSlot("0000"))
	assert.Equal(t, 0, ClockToSlot("2500"))
	assert.Equal(t, 0, ClockToSlot("abcd"))
	assert.Equal(t, 0, ClockToSlot(""))
}

func TestSlotTable_RoundTrip(t *testing.T) {
	for s := 1; s <= SlotCount; s++ {
		c, ok := SlotToClock(s)
		require.True(t, ok)
		assert.Equal(t, s, ClockToSlot(c.Start), "slot %d start %s", s, c.Start)
	}
}

func TestSlotTable_Contiguous(t *testing.T) {
	for s := 1; s < SlotCount; s++ {
		cur, _ := SlotToClock(s)
		next, _ := SlotToClock(s + 1)
		assert.Equal(t, cur.End, next.Start, "slot %d must end where slot %d starts", s, s+1)
	}
}
