package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/habitrack/internal/calendar"
	"github.com/theirongolddev/habitrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// CalendarGrid renders a month grid. Each day is a 4-column cell;
// completed days are filled, today is outlined in the accent colour.
func CalendarGrid(g calendar.Grid) string {
	t := theme.Active

	surface := lipgloss.NewStyle().Background(t.Surface)
	head := t.Style(theme.Secondary).Background(t.Surface).Width(4).Align(lipgloss.Center)
	plain := surface.Foreground(t.TextPrimary).Width(4).Align(lipgloss.Center)
	done := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Green).
		Bold(true).
		Width(4).
		Align(lipgloss.Center)
	today := surface.Foreground(t.Accent).Bold(true).Underline(true).Width(4).Align(lipgloss.Center)

	var b strings.Builder
	for _, name := range calendar.Weekdays {
		b.WriteString(head.Render(name[:2]))
	}
	for _, week := range g.Weeks {
		b.WriteString("\n")
		for _, c := range week {
			switch c.Status {
			case calendar.Empty:
				b.WriteString(surface.Render("    "))
			case calendar.Completed:
				b.WriteString(done.Render(fmt.Sprint(c.Day)))
			case calendar.Today:
				b.WriteString(today.Render(fmt.Sprint(c.Day)))
			default:
				b.WriteString(plain.Render(fmt.Sprint(c.Day)))
			}
		}
	}
	return b.String()
}
