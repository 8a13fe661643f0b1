package components

import (
	"fmt"

	"github.com/theirongolddev/habitrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForRate returns red/orange/yellow/green for a 0-100 completion rate.
func ColorForRate(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 80:
		return t.Green
	case pct >= 50:
		return t.Yellow
	case pct >= 25:
		return t.Orange
	default:
		return t.Red
	}
}

func clampRate(pct float64) float64 {
	return min(max(pct, 0), 100)
}

// RateBar renders a labeled completion-rate bar with percentage.
func RateBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active
	pct = clampRate(pct)
	color := ColorForRate(pct)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct/100) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}

// CompactRateBar renders a tiny list-row-sized rate indicator.
func CompactRateBar(pct float64, width int) string {
	t := theme.Active
	pct = clampRate(pct)

	bar := progress.New(
		progress.WithSolidFill(string(ColorForRate(pct))),
		progress.WithWidth(max(width-5, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(ColorForRate(pct)).Bold(true)
	return bar.ViewAs(pct/100) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}
