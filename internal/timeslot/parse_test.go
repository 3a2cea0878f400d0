package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOpeningHours(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{name: "full day", text: "0700 - 2300", wantStart: 1, wantEnd: 33, wantOK: true},
		{name: "afternoon only", text: "1400 - 1800", wantStart: 15, wantEnd: 23, wantOK: true},
		{name: "extra surrounding whitespace", text: " 0700  -  2300 ", wantStart: 1, wantEnd: 33, wantOK: true},
		{name: "free text", text: "this is a string", wantOK: false},
		{name: "single token no separator", text: "2", wantOK: false},
		{name: "empty", text: "", wantOK: false},
		{name: "non numeric side", text: "0700 - late", wantOK: false},
		{name: "three digit side", text: "700 - 2300", wantOK: false},
		{name: "five digit side", text: "07000 - 2300", wantOK: false},
		// Structurally valid but physically impossible times are accepted and
		// resolve to slot 0; range checking is deliberately absent.
		{name: "impossible hour passes shape check", text: "2500 - 2600", wantStart: 0, wantEnd: 0, wantOK: true},
		{name: "off-grid minute resolves to zero", text: "0715 - 2300", wantStart: 0, wantEnd: 33, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := ParseOpeningHours(tt.text)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestParseOpeningHoursISO(t *testing.T) {
	day := time.Date(2022, 6, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		text      string
		wantStart string
		wantEnd   string
		wantOK    bool
	}{
		{
			name:      "valid date and text",
			date:      day,
			text:      "0700 - 2300",
			wantStart: "2022-06-16T07:00:00",
			wantEnd:   "2022-06-16T23:00:00",
			wantOK:    true,
		},
		{name: "zero date valid text", date: time.Time{}, text: "0700 - 2300", wantOK: false},
		{name: "valid date malformed text", date: day, text: "2", wantOK: false},
		{name: "zero date malformed text", date: time.Time{}, text: "nonsense", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := ParseOpeningHoursISO(tt.date, tt.text)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
