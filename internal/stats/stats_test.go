package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/habitrack/internal/model"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDay(s)
	require.NoError(t, err, "parse date %q", s)
	return d
}

func TestStreak_CountsBackFromToday(t *testing.T) {
	done := model.NewDaySet("2024-06-01", "2024-06-02", "2024-06-03")

	assert.Equal(t, 3, Streak(done, mustDay(t, "2024-06-03")))
	assert.Equal(t, 0, Streak(done, mustDay(t, "2024-06-04")), "gap today resets streak")
}

func TestStreak_ZeroWhenTodayMissing(t *testing.T) {
	// Long run ending yesterday still counts as zero.
	done := model.NewDaySet("2024-05-25", "2024-05-26", "2024-05-27", "2024-05-28", "2024-05-29")
	assert.Equal(t, 0, Streak(done, mustDay(t, "2024-05-30")))
}

func TestStreak_StopsAtFirstGap(t *testing.T) {
	done := model.NewDaySet("2024-06-01", "2024-06-03", "2024-06-04")
	assert.Equal(t, 2, Streak(done, mustDay(t, "2024-06-04")))
}

func TestStreak_IgnoresTimeOfDay(t *testing.T) {
	done := model.NewDaySet("2024-06-02", "2024-06-03")
	late := time.Date(2024, time.June, 3, 23, 30, 0, 0, time.Local)
	assert.Equal(t, 2, Streak(done, late))
}

func TestCompletionRate_ThirtyDayWindow(t *testing.T) {
	done := model.NewDaySet()
	for _, d := range []string{
		"2024-05-01", "2024-05-03", "2024-05-05", "2024-05-07", "2024-05-09",
		"2024-05-11", "2024-05-13", "2024-05-15", "2024-05-17", "2024-05-30",
	} {
		done[d] = struct{}{}
	}

	rate := CompletionRate(done, mustDay(t, "2024-05-01"), mustDay(t, "2024-05-30"), 30)
	assert.InDelta(t, 100.0/3.0, rate, 1e-9)
}

func TestCompletionRate_WindowBoundedByCreation(t *testing.T) {
	done := model.NewDaySet("2024-06-09", "2024-06-10")
	// Created 2024-06-06: window is 5 days even though 30 are requested.
	rate := CompletionRate(done, mustDay(t, "2024-06-06"), mustDay(t, "2024-06-10"), 30)
	assert.InDelta(t, 40.0, rate, 1e-9)
}

func TestCompletionRate_NewHabitHasOneDayWindow(t *testing.T) {
	today := mustDay(t, "2024-06-10")
	assert.InDelta(t, 0.0, CompletionRate(model.NewDaySet(), today, today, 30), 1e-9)
	assert.InDelta(t, 100.0, CompletionRate(model.NewDaySet("2024-06-10"), today, today, 30), 1e-9)
}

func TestCompletionRate_IgnoresDaysOutsideWindow(t *testing.T) {
	done := model.NewDaySet("2024-01-01", "2024-06-10")
	rate := CompletionRate(done, mustDay(t, "2023-01-01"), mustDay(t, "2024-06-10"), 10)
	assert.InDelta(t, 10.0, rate, 1e-9)
}

func TestCompletionRate_EmptyWindow(t *testing.T) {
	today := mustDay(t, "2024-06-10")
	assert.Zero(t, CompletionRate(model.NewDaySet("2024-06-10"), today, today, 0))
	assert.Zero(t, CompletionRate(model.NewDaySet("2024-06-10"), today, today, -5))
	// Created in the future.
	assert.Zero(t, CompletionRate(model.NewDaySet(), mustDay(t, "2024-06-12"), today, 30))
}

func TestLongestStreak(t *testing.T) {
	done := model.NewDaySet(
		"2024-05-01", "2024-05-02",
		"2024-05-10", "2024-05-11", "2024-05-12", "2024-05-13",
		"2024-05-31", "2024-06-01",
	)
	assert.Equal(t, 4, LongestStreak(done))
	assert.Equal(t, 0, LongestStreak(model.NewDaySet()))
	assert.Equal(t, 1, LongestStreak(model.NewDaySet("2024-01-01")))
}

func TestForHabit(t *testing.T) {
	h := model.Habit{Name: "read", Category: "Learning", CreatedDate: "2024-06-01", TargetFrequency: model.FrequencyDaily}
	done := model.NewDaySet("2024-06-03", "2024-06-04")

	hs := ForHabit(h, done, mustDay(t, "2024-06-04"), 30)
	assert.Equal(t, "read", hs.Name)
	assert.True(t, hs.CompletedToday)
	assert.Equal(t, 2, hs.Streak)
	assert.Equal(t, 2, hs.BestStreak)
	assert.Equal(t, 2, hs.TotalCompletions)
	assert.InDelta(t, 50.0, hs.Rate, 1e-9)
}
