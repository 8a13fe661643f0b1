package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuild_June2024(t *testing.T) {
	// June 1st 2024 is a Saturday.
	g := Build(Month{Year: 2024, Month: time.June}, nil, date(2024, time.June, 15))

	require.Len(t, g.Weeks, 5)
	first := g.Weeks[0]
	for col := 0; col < 5; col++ {
		assert.Equal(t, Empty, first[col].Status, "col %d", col)
		assert.Zero(t, first[col].Day)
		assert.Empty(t, first[col].Date)
	}
	assert.Equal(t, 1, first[5].Day)
	assert.Equal(t, "2024-06-01", first[5].Date)
	assert.Equal(t, 2, first[6].Day)

	last := g.Weeks[4]
	assert.Equal(t, 24, last[0].Day)
	assert.Equal(t, 30, last[6].Day)
}

func TestBuild_PadsTrailingWeek(t *testing.T) {
	// September 30th 2024 is a Monday, alone in the last row.
	g := Build(Month{Year: 2024, Month: time.September}, nil, date(2024, time.September, 1))
	last := g.Weeks[len(g.Weeks)-1]
	assert.Equal(t, 30, last[0].Day)
	for col := 1; col < 7; col++ {
		assert.Equal(t, Empty, last[col].Status, "col %d", col)
	}
}

func TestBuild_RowCounts(t *testing.T) {
	tests := []struct {
		month Month
		rows  int
	}{
		{Month{Year: 2021, Month: time.February}, 4}, // starts Monday, 28 days
		{Month{Year: 2024, Month: time.February}, 5},
		{Month{Year: 2024, Month: time.June}, 5},
		{Month{Year: 2025, Month: time.March}, 6}, // starts Saturday, 31 days
		{Month{Year: 2024, Month: time.September}, 6}, // starts Sunday
	}
	for _, tt := range tests {
		t.Run(tt.month.Title(), func(t *testing.T) {
			g := Build(tt.month, nil, date(2000, time.January, 1))
			assert.Len(t, g.Weeks, tt.rows)

			days := 0
			for _, w := range g.Weeks {
				for _, c := range w {
					if c.Status != Empty {
						days++
					}
				}
			}
			assert.Equal(t, tt.month.Days(), days)
		})
	}
}

func TestBuild_Statuses(t *testing.T) {
	done := map[string]bool{"2024-06-03": true, "2024-06-10": true}
	g := Build(Month{Year: 2024, Month: time.June}, func(d string) bool { return done[d] }, date(2024, time.June, 10))

	cells := map[string]Status{}
	for _, w := range g.Weeks {
		for _, c := range w {
			if c.Date != "" {
				cells[c.Date] = c.Status
			}
		}
	}
	assert.Equal(t, Completed, cells["2024-06-03"])
	assert.Equal(t, Completed, cells["2024-06-10"], "completed wins over today")
	assert.Equal(t, Plain, cells["2024-06-11"])
	assert.Equal(t, 2, g.Completed())

	g = Build(Month{Year: 2024, Month: time.June}, nil, date(2024, time.June, 11))
	assert.Equal(t, Today, g.Weeks[2][1].Status)
}
