package components

import (
	"strings"

	"github.com/theirongolddev/habitrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs. Letters are taken by habit actions, so
// tabs switch on digits.
var Tabs = []Tab{
	{Name: "Habits", Key: '1'},
	{Name: "Calendar", Key: '2'},
	{Name: "Stats", Key: '3'},
	{Name: "Settings", Key: '4'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := t.Style(theme.Accent).Background(t.SurfaceHover).Padding(0, 1)
	inactiveStyle := t.Style(theme.Secondary).Padding(0, 1)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		parts = append(parts, keyStyle.Render(string(tab.Key))+inactiveStyle.Render(tab.Name))
	}

	bar := " " + strings.Join(parts, " ")
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(bar)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// TabVisualWidth returns the rendered width of tab, matching RenderTabBar.
func TabVisualWidth(tab Tab, active bool) int {
	w := lipgloss.Width(tab.Name) + 2 // horizontal padding
	if !active {
		w++ // shortcut digit
	}
	return w
}
