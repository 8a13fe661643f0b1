package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/habitrack/internal/cli"
	"github.com/theirongolddev/habitrack/internal/model"
	"github.com/theirongolddev/habitrack/internal/tui/components"
	"github.com/theirongolddev/habitrack/internal/tui/theme"
)

func (a App) renderStatsTab(cw int) string {
	t := theme.Active
	window := a.window()
	sum := a.tr.Summary(window)
	hist := a.tr.History(a.historyDays())

	var b strings.Builder

	weekDone := 0
	for _, d := range hist[max(len(hist)-7, 0):] {
		weekDone += d.Completed
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total check-ins", Value: cli.FormatNumber(int64(sum.TotalCompletions))},
		{Label: "Last 7 days", Value: cli.FormatNumber(int64(weekDone))},
		{Label: "Best streak", Value: cli.FormatStreak(sum.BestStreak), Delta: sum.BestStreakHabit},
		{Label: fmt.Sprintf("Avg rate (%dd)", window), Value: cli.FormatRate(sum.AverageRate)},
	}, cw))
	b.WriteString("\n")

	if sum.TotalHabits == 0 {
		body := t.Style(theme.Secondary).Background(t.Surface).Render("Statistics appear once you track a habit.")
		b.WriteString(components.ContentCard("Stats", body, cw))
		return b.String()
	}

	values := make([]float64, len(hist))
	for i, d := range hist {
		values[i] = float64(d.Completed)
	}
	chart := components.BarChart(values, chartDateLabels(hist), float64(sum.TotalHabits), components.CardInnerWidth(cw), 6)
	b.WriteString(components.ContentCard(fmt.Sprintf("Habits completed per day (last %d days)", len(hist)), chart, cw))
	b.WriteString("\n")

	all := a.tr.AllStats(window)
	labelW := 8
	for _, hs := range all {
		labelW = max(labelW, len([]rune(hs.Name)))
	}
	labelW = min(labelW, 24)
	barW := max(components.CardInnerWidth(cw)-labelW-6, 10)

	var rates strings.Builder
	for i, hs := range all {
		if i > 0 {
			rates.WriteString("\n")
		}
		rates.WriteString(components.RateBar(cli.Truncate(hs.Name, labelW), hs.Rate, labelW, barW))
	}
	b.WriteString(components.ContentCard(fmt.Sprintf("Completion rate (%d days)", window), rates.String(), cw))

	return b.String()
}

// chartDateLabels builds compact X-axis labels for an oldest-first day
// series: the month abbreviation on the first day and at month
// boundaries, otherwise just the day number.
func chartDateLabels(days []model.DailyCompletions) []string {
	labels := make([]string, len(days))
	prevMonth := time.Month(0)
	for i, d := range days {
		m := d.Date.Month()
		if i == 0 || m != prevMonth {
			labels[i] = d.Date.Format("Jan")
		} else {
			labels[i] = strconv.Itoa(d.Date.Day())
		}
		prevMonth = m
	}
	return labels
}
