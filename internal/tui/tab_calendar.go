package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/habitrack/internal/cli"
	"github.com/theirongolddev/habitrack/internal/tui/components"
	"github.com/theirongolddev/habitrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.PrevHabit):
		a.cal.Cycle(-1)
	case key.Matches(msg, a.keys.NextHabit):
		a.cal.Cycle(1)
	case key.Matches(msg, a.keys.PrevMonth):
		a.cal.PrevMonth()
	case key.Matches(msg, a.keys.NextMonth):
		a.cal.NextMonth()
	case key.Matches(msg, a.keys.ThisMonth):
		a.cal.Today()
	case key.Matches(msg, a.keys.Toggle):
		if name, ok := a.cal.Selected(); ok {
			a.toggleToday(name)
		}
	}
	return a, nil
}

func (a App) renderCalendarTab(cw int) string {
	t := theme.Active

	grid, ok := a.cal.Grid(a.tr)
	if !ok {
		body := t.Style(theme.Secondary).Background(t.Surface).
			Render("No habits to show yet.\nAdd one on the Habits tab with a.")
		return components.ContentCard("Calendar", body, cw)
	}
	name, _ := a.cal.Selected()

	var b strings.Builder
	b.WriteString(components.ContentCard("Habit", a.habitSelector(name, components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")

	// Grid card on the left, stats beside it.
	gridBody := t.Style(theme.Header).Render("‹ "+grid.Month.Title()+" ›") + "\n\n" +
		components.CalendarGrid(grid)
	gridW := min(lipgloss.Width(components.CalendarGrid(grid))+4, cw)
	sideW := cw - gridW

	label := t.Style(theme.Secondary).Background(t.Surface)
	value := t.Style(theme.Stats)
	var side strings.Builder
	if hs, ok := a.tr.Stats(name, a.window()); ok {
		rows := []struct{ k, v string }{
			{"This month", fmt.Sprintf("%d days", grid.Completed())},
			{"Current streak", cli.FormatStreak(hs.Streak)},
			{"Best streak", cli.FormatStreak(hs.BestStreak)},
			{fmt.Sprintf("Rate (%dd)", a.window()), cli.FormatRate(hs.Rate)},
			{"Total", cli.FormatNumber(int64(hs.TotalCompletions))},
			{"Since", hs.CreatedDate},
		}
		for _, r := range rows {
			side.WriteString(label.Render(fmt.Sprintf("%-16s", r.k)) + value.Render(r.v) + "\n")
		}
		if hs.Category != "" {
			side.WriteString(label.Render(fmt.Sprintf("%-16s", "Category")) + value.Render(hs.Category) + "\n")
		}
	}
	side.WriteString("\n" + label.Render("h/l month · [/] habit · . today"))

	if sideW < 30 {
		b.WriteString(components.ContentCard("", gridBody, cw))
		return b.String()
	}
	b.WriteString(components.CardRow([]string{
		components.ContentCard("", gridBody, gridW),
		components.ContentCard("Stats", side.String(), sideW),
	}))
	return b.String()
}

// habitSelector renders every habit name with the selected one highlighted,
// clipped to width.
func (a App) habitSelector(selected string, width int) string {
	t := theme.Active
	on := t.Style(theme.Accent).Background(t.SurfaceBright).Padding(0, 1)
	off := t.Style(theme.Secondary).Background(t.Surface).Padding(0, 1)

	var parts []string
	for _, n := range a.cal.Habits() {
		if n == selected {
			parts = append(parts, on.Render(n))
		} else {
			parts = append(parts, off.Render(n))
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, ""))
}
