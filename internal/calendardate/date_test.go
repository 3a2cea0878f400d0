package calendardate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pinNow fixes the package clock for the duration of a test.
func pinNow(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = prev })
}

func TestToUnixDay(t *testing.T) {
	tests := []struct {
		name string
		date string
		want int64
	}{
		{name: "valid date", date: "2022-06-16", want: time.Date(2022, 6, 16, 0, 0, 0, 0, Location).Unix()},
		{name: "free text", date: "not a date", want: 0},
		{name: "wrong layout", date: "16/06/2022", want: 0},
		{name: "impossible day", date: "2022-02-30", want: 0},
		{name: "trailing garbage", date: "2022-06-16T10:00", want: 0},
		{name: "empty", date: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToUnixDay(tt.date))
		})
	}
}

func TestFromUnixDay_RoundTrip(t *testing.T) {
	pinNow(t, time.Date(2022, 6, 20, 12, 0, 0, 0, Location))

	ts := ToUnixDay("2022-06-16")
	require.NotZero(t, ts)

	d, ok := FromUnixDay(ts)
	require.True(t, ok)
	assert.Equal(t, 2022, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 16, d.Day())
}

func TestFromUnixDay_RejectsCorruptedInput(t *testing.T) {
	fixed := time.Date(2022, 6, 20, 12, 0, 0, 0, Location)
	pinNow(t, fixed)

	t.Run("negative timestamp", func(t *testing.T) {
		_, ok := FromUnixDay(-1)
		assert.False(t, ok)
	})

	t.Run("more than a year ahead", func(t *testing.T) {
		_, ok := FromUnixDay(fixed.AddDate(2, 0, 0).Unix())
		assert.False(t, ok)
	})

	t.Run("more than a year behind", func(t *testing.T) {
		_, ok := FromUnixDay(fixed.AddDate(-1, -1, 0).Unix())
		assert.False(t, ok)
	})

	t.Run("milliseconds instead of seconds", func(t *testing.T) {
		// A millisecond timestamp lands tens of thousands of years out.
		_, ok := FromUnixDay(fixed.UnixMilli())
		assert.False(t, ok)
	})

	t.Run("within a year is accepted", func(t *testing.T) {
		d, ok := FromUnixDay(fixed.AddDate(0, 6, 0).Unix())
		require.True(t, ok)
		assert.Equal(t, time.December, d.Month())
	})
}

func TestIsSameOrAfter(t *testing.T) {
	pinNow(t, time.Date(2022, 6, 20, 23, 30, 0, 0, Location))

	tests := []struct {
		name       string
		date       string
		offsetDays int
		want       bool
	}{
		{name: "three days out with two day lead", date: "2022-06-23", offsetDays: 2, want: true},
		{name: "exactly at the lead boundary", date: "2022-06-22", offsetDays: 2, want: true},
		{name: "inside the lead window", date: "2022-06-21", offsetDays: 2, want: false},
		{name: "today with zero lead", date: "2022-06-20", offsetDays: 0, want: true},
		{name: "yesterday", date: "2022-06-19", offsetDays: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := ToUnixDay(tt.date)
			require.NotZero(t, ts)
			assert.Equal(t, tt.want, IsSameOrAfter(ts, tt.offsetDays))
		})
	}

	t.Run("invalid timestamp is never same or after", func(t *testing.T) {
		assert.False(t, IsSameOrAfter(-5, 0))
		assert.False(t, IsSameOrAfter(0, 0))
	})
}
