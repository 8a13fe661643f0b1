package model

import "time"

// HabitStats holds the derived numbers for a single habit.
type HabitStats struct {
	Name             string
	Category         string
	CreatedDate      string
	CompletedToday   bool
	Streak           int
	BestStreak       int
	Rate             float64 // percent, 0-100
	TotalCompletions int
}

// Summary holds the top-level aggregate across all habits.
type Summary struct {
	TotalHabits      int
	CompletedToday   int
	TotalCompletions int
	AverageRate      float64 // percent, 0-100
	BestStreak       int
	BestStreakHabit  string
	WindowDays       int
}

// DailyCompletions holds how many habits were done on one calendar day,
// out of the habits that existed on that day.
type DailyCompletions struct {
	Date      time.Time
	Completed int
	Total     int
}
