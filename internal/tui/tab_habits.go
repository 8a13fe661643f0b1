package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/habitrack/internal/cli"
	"github.com/theirongolddev/habitrack/internal/model"
	"github.com/theirongolddev/habitrack/internal/tui/components"
	"github.com/theirongolddev/habitrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// habitsState tracks the habit list cursor.
type habitsState struct {
	cursor int
}

func (s *habitsState) move(delta, n int) {
	s.cursor += delta
	s.clamp(n)
}

func (s *habitsState) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// offset is the first visible row that keeps the cursor on screen.
func (s habitsState) offset(rows int) int {
	return max(s.cursor-rows+1, 0)
}

func (a App) selectedHabit() (string, bool) {
	names := a.tr.Names()
	if a.habits.cursor < 0 || a.habits.cursor >= len(names) {
		return "", false
	}
	return names[a.habits.cursor], true
}

func (a App) updateHabitsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Up):
		a.habits.move(-1, a.tr.Len())
	case key.Matches(msg, a.keys.Down):
		a.habits.move(1, a.tr.Len())
	case key.Matches(msg, a.keys.Toggle):
		if name, ok := a.selectedHabit(); ok {
			a.toggleToday(name)
		}
	case key.Matches(msg, a.keys.Add):
		a.openForm(formAdd, newAddForm(a.vals, categorySuggestions(a.cfg), func(name string) bool {
			_, ok := a.tr.Get(name)
			return ok
		}))
		return a, a.form.Init()
	case key.Matches(msg, a.keys.Delete):
		if name, ok := a.selectedHabit(); ok {
			a.vals.target = name
			a.openForm(formDelete, newDeleteForm(a.vals))
			return a, a.form.Init()
		}
	}
	return a, nil
}

func (a *App) toggleToday(name string) {
	done, err := a.tr.ToggleToday(name)
	state := "not done today"
	if done {
		state = "done today"
	}
	a.report(err, fmt.Sprintf("%s: %s", name, state))
}

func (a App) renderHabitsTab(cw, h int) string {
	t := theme.Active
	window := a.window()
	sum := a.tr.Summary(window)

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Habits", Value: cli.FormatNumber(int64(sum.TotalHabits))},
		{Label: "Done today", Value: fmt.Sprintf("%d/%d", sum.CompletedToday, sum.TotalHabits)},
		{Label: "Best streak", Value: cli.FormatStreak(sum.BestStreak), Delta: sum.BestStreakHabit},
		{Label: fmt.Sprintf("Avg rate (%dd)", window), Value: cli.FormatRate(sum.AverageRate)},
	}, cw))
	b.WriteString("\n")

	if sum.TotalHabits == 0 {
		body := t.Style(theme.Secondary).Background(t.Surface).
			Render("No habits yet. Press a to add your first one.")
		b.WriteString(components.ContentCard("Habits", body, cw))
		return b.String()
	}

	// Card chrome: metric row, border, title.
	rows := max(h-lipgloss.Height(b.String())-3, 1)

	b.WriteString(components.ContentCard("Habits", a.habitRows(a.tr.AllStats(window), cw, rows), cw))
	return b.String()
}

func (a App) habitRows(all []model.HabitStats, cw, rows int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Bold(true)
	todoStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	catStyle := t.Style(theme.Secondary)

	const (
		markW   = 4
		streakW = 9
		rateW   = 18
		catW    = 14
	)
	nameW := max(innerW-markW-streakW-rateW-catW-3, 8)

	start := a.habits.offset(rows)
	end := min(start+rows, len(all))
	var lines []string
	for i := start; i < end; i++ {
		hs := all[i]
		style := rowStyle
		marker := "  "
		if i == a.habits.cursor {
			style = selStyle
			marker = "▸ "
		}

		checkStyle := todoStyle
		if hs.CompletedToday {
			checkStyle = doneStyle
		}
		check := checkStyle.Background(style.GetBackground()).Render(cli.FormatCheck(hs.CompletedToday))

		line := style.Render(marker) + check +
			style.Render(" "+fmt.Sprintf("%-*s", nameW, cli.Truncate(hs.Name, nameW))) +
			catStyle.Background(style.GetBackground()).Render(fmt.Sprintf(" %-*s", catW, cli.Truncate(hs.Category, catW))) +
			style.Render(fmt.Sprintf(" %*s ", streakW, cli.FormatStreak(hs.Streak))) +
			components.CompactRateBar(hs.Rate, rateW)
		lines = append(lines, line)
	}

	if more := len(all) - end; more > 0 {
		lines = append(lines, catStyle.Render(fmt.Sprintf("  … %d more", more)))
	}
	return strings.Join(lines, "\n")
}
