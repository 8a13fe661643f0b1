package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/habitrack/internal/calendar"
	"github.com/theirongolddev/habitrack/internal/tui/theme"
)

func TestCalendarGrid_Shape(t *testing.T) {
	theme.SetActive("flexoki-dark")
	g := calendar.Build(calendar.Month{Year: 2024, Month: time.June}, nil, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.Local))

	out := CalendarGrid(g)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 1+len(g.Weeks))
	for _, l := range lines {
		assert.Equal(t, 28, lipgloss.Width(l))
	}
	assert.Contains(t, lines[0], "Mo")
	assert.Contains(t, lines[0], "Su")
}

func TestTabIdxByKey(t *testing.T) {
	assert.Equal(t, 0, TabIdxByKey('1'))
	assert.Equal(t, 3, TabIdxByKey('4'))
	assert.Equal(t, -1, TabIdxByKey('x'))
}

func TestRenderStatusBar_Unsaved(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := RenderStatusBar(80, StatusBar{Help: "? help", Unsaved: true, Path: "habits_data.json"})
	assert.Contains(t, out, "unsaved")
	assert.NotContains(t, out, "habits_data.json")
	assert.Equal(t, 80, lipgloss.Width(out))
}

func TestRenderStatusBar_StaysOneLine(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := RenderStatusBar(60, StatusBar{
		Help:    strings.Repeat("k/↑ up • ", 10),
		Message: "Read: done today (not saved)",
		Unsaved: true,
	})
	assert.NotContains(t, out, "\n")
	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Contains(t, out, "Read: done today")
	assert.Contains(t, out, "unsaved")
}
