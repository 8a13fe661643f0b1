package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2024-06-01", "2024-06-01", 1},
		{"2024-05-01", "2024-05-30", 30},
		{"2023-12-31", "2024-01-01", 2},
		{"2024-06-02", "2024-06-01", 0},
		{"2024-02-28", "2024-03-01", 3},
	}
	for _, tt := range tests {
		a, err := ParseDay(tt.from)
		require.NoError(t, err)
		b, err := ParseDay(tt.to)
		require.NoError(t, err)
		assert.Equal(t, tt.want, DaysBetween(a, b), "%s..%s", tt.from, tt.to)
	}
}

func TestMidnightAndDayKey(t *testing.T) {
	ts := time.Date(2024, time.June, 3, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-06-03", DayKey(ts))
	assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.Local), Midnight(ts))
	assert.Equal(t, "2024-06-04", DayKey(AddDays(Midnight(ts), 1)))
}

func TestParseDayRejectsInvalidDates(t *testing.T) {
	for _, s := range []string{"2024-02-30", "2024-13-01", "yesterday", ""} {
		_, err := ParseDay(s)
		assert.Error(t, err, s)
	}
}

func TestDaySetSorted(t *testing.T) {
	s := NewDaySet("2024-06-03", "2024-06-01", "2024-06-02")
	assert.True(t, s.Has("2024-06-02"))
	assert.False(t, s.Has("2024-06-04"))
	assert.Equal(t, []string{"2024-06-01", "2024-06-02", "2024-06-03"}, s.Sorted())
}
