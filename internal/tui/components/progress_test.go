package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/habitrack/internal/tui/theme"
)

func TestColorForRate(t *testing.T) {
	theme.SetActive("flexoki-dark")
	assert.Equal(t, theme.Active.Green, ColorForRate(100))
	assert.Equal(t, theme.Active.Yellow, ColorForRate(50))
	assert.Equal(t, theme.Active.Orange, ColorForRate(30))
	assert.Equal(t, theme.Active.Red, ColorForRate(0))
}

func TestRateBar_Width(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := RateBar("Read", 33.3, 8, 20)
	// label + space + bar + space + "nnn%"
	assert.Equal(t, 8+1+20+1+4, lipgloss.Width(out))
	assert.Contains(t, out, " 33%")
}

func TestCompactRateBar_Clamps(t *testing.T) {
	theme.SetActive("flexoki-dark")
	assert.Contains(t, CompactRateBar(140, 16), "100%")
	assert.Contains(t, CompactRateBar(-3, 16), "  0%")
}
