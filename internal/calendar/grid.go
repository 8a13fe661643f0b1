package calendar

import (
	"time"

	"github.com/theirongolddev/habitrack/internal/model"
)

// Status is how a single cell renders.
type Status int

const (
	// Empty pads the first and last week of the month.
	Empty Status = iota
	Plain
	Today
	Completed
)

func (s Status) String() string {
	switch s {
	case Plain:
		return "plain"
	case Today:
		return "today"
	case Completed:
		return "completed"
	default:
		return "empty"
	}
}

// Cell is one day of the grid. Padding cells have a zero Day and no Date.
type Cell struct {
	Day    int
	Date   string
	Status Status
}

// Grid is a month laid out Monday-first, one row per spanned week.
type Grid struct {
	Month Month
	Weeks [][7]Cell
}

// Weekdays are the column headers, Monday first.
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// mondayIndex maps time.Weekday (Sunday=0) to a Monday-first column.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// Build lays out month. done reports whether a date ("YYYY-MM-DD") is
// completed; completion wins over the today highlight.
func Build(month Month, done func(date string) bool, today time.Time) Grid {
	if done == nil {
		done = func(string) bool { return false }
	}
	todayKey := model.DayKey(today)

	g := Grid{Month: month}
	var week [7]Cell
	col := mondayIndex(month.First().Weekday())
	for d := 1; d <= month.Days(); d++ {
		key := model.DayKey(time.Date(month.Year, month.Month, d, 0, 0, 0, 0, time.Local))
		status := Plain
		switch {
		case done(key):
			status = Completed
		case key == todayKey:
			status = Today
		}
		week[col] = Cell{Day: d, Date: key, Status: status}

		col++
		if col == 7 {
			g.Weeks = append(g.Weeks, week)
			week = [7]Cell{}
			col = 0
		}
	}
	if col > 0 {
		g.Weeks = append(g.Weeks, week)
	}
	return g
}

// Completed counts completed cells.
func (g Grid) Completed() int {
	n := 0
	for _, w := range g.Weeks {
		for _, c := range w {
			if c.Status == Completed {
				n++
			}
		}
	}
	return n
}
