// Package stats derives streaks, completion rates and daily history from
// completion sets. Every function is pure: "today" is always passed in.
package stats

import (
	"time"

	"github.com/theirongolddev/habitrack/internal/model"
)

// DefaultWindowDays is the rolling window used for completion rates.
const DefaultWindowDays = 30

// Streak counts consecutive completed days walking back from today.
// A habit not yet marked today has a streak of 0, whatever its history.
func Streak(done model.DaySet, today time.Time) int {
	day := model.Midnight(today)
	n := 0
	for done.Has(model.DayKey(day)) {
		n++
		day = model.AddDays(day, -1)
	}
	return n
}

// CompletionRate returns the percentage of days completed within
// [max(created, today-(window-1)), today]. It is 0 when the window is
// non-positive or the habit was created after today.
func CompletionRate(done model.DaySet, created, today time.Time, window int) float64 {
	if window <= 0 {
		return 0
	}
	today = model.Midnight(today)
	start := model.AddDays(today, -(window - 1))
	if c := model.Midnight(created); c.After(start) {
		start = c
	}

	days := model.DaysBetween(start, today)
	if days <= 0 {
		return 0
	}

	hits := 0
	for i := 0; i < days; i++ {
		if done.Has(model.DayKey(model.AddDays(start, i))) {
			hits++
		}
	}
	return float64(hits) / float64(days) * 100
}

// LongestStreak returns the longest run of consecutive completed days
// anywhere in the history.
func LongestStreak(done model.DaySet) int {
	best, run := 0, 0
	var prev time.Time
	for _, s := range done.Sorted() {
		d, err := model.ParseDay(s)
		if err != nil {
			continue
		}
		if run > 0 && model.DaysBetween(prev, d) == 2 {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = d
	}
	return best
}

// ForHabit computes the full stat line for one habit.
func ForHabit(h model.Habit, done model.DaySet, today time.Time, window int) model.HabitStats {
	created, err := model.ParseDay(h.CreatedDate)
	if err != nil {
		created = model.Midnight(today)
	}
	return model.HabitStats{
		Name:             h.Name,
		Category:         h.Category,
		CreatedDate:      h.CreatedDate,
		CompletedToday:   done.Has(model.DayKey(today)),
		Streak:           Streak(done, today),
		BestStreak:       LongestStreak(done),
		Rate:             CompletionRate(done, created, today, window),
		TotalCompletions: len(done),
	}
}
