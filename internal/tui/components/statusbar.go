package components

import (
	"github.com/theirongolddev/habitrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar is what the bottom line shows.
type StatusBar struct {
	Help    string // short key hints
	Message string // last action result
	Unsaved bool   // last save failed
	Path    string // data file
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s StatusBar) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)
	warn := lipgloss.NewStyle().
		Foreground(t.Red).
		Background(t.Surface).
		Bold(true)
	msg := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	right := s.Path + " "
	if s.Unsaved {
		right = warn.Render("● unsaved [w] retry") + " "
	}
	avail := max(width-lipgloss.Width(right)-1, 0)

	// Key hints go first when the line is full.
	left := " " + s.Help
	if s.Message != "" {
		left += "  " + msg.Render(s.Message)
		if lipgloss.Width(left) > avail {
			left = " " + msg.Render(s.Message)
		}
	}
	left = lipgloss.NewStyle().MaxWidth(avail).Render(left)

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return style.Render(left + lipgloss.NewStyle().Background(t.Surface).Width(padding).Render("") + right)
}
