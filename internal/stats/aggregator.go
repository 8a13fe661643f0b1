package stats

import (
	"time"

	"github.com/theirongolddev/habitrack/internal/model"
)

// Summarize computes dashboard totals across all habits.
func Summarize(habits []model.Habit, completions map[string]model.DaySet, today time.Time, window int) model.Summary {
	sum := model.Summary{
		TotalHabits: len(habits),
		WindowDays:  window,
	}
	if len(habits) == 0 {
		return sum
	}

	var rateTotal float64
	for _, h := range habits {
		hs := ForHabit(h, completions[h.Name], today, window)
		if hs.CompletedToday {
			sum.CompletedToday++
		}
		sum.TotalCompletions += hs.TotalCompletions
		rateTotal += hs.Rate
		if hs.Streak > sum.BestStreak {
			sum.BestStreak = hs.Streak
			sum.BestStreakHabit = h.Name
		}
	}
	sum.AverageRate = rateTotal / float64(len(habits))

	return sum
}

// History returns one entry per calendar day for the last n days ending
// today, oldest first. Every day is present so charts show gaps as zeros.
// Total counts habits that existed on that day.
func History(habits []model.Habit, completions map[string]model.DaySet, today time.Time, n int) []model.DailyCompletions {
	if n <= 0 {
		return nil
	}
	today = model.Midnight(today)
	start := model.AddDays(today, -(n - 1))

	days := make([]model.DailyCompletions, 0, n)
	for i := 0; i < n; i++ {
		day := model.AddDays(start, i)
		key := model.DayKey(day)
		dc := model.DailyCompletions{Date: day}
		for _, h := range habits {
			done := completions[h.Name].Has(key)
			// ISO dates compare lexically.
			if h.CreatedDate <= key || done {
				dc.Total++
			}
			if done {
				dc.Completed++
			}
		}
		days = append(days, dc)
	}
	return days
}
