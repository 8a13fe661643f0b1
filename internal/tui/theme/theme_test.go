package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByName_FallsBackToFlexokiDark(t *testing.T) {
	assert.Equal(t, "slate-light", ByName("slate-light").Name)
	assert.Equal(t, FlexokiDark.Name, ByName("nope").Name)
}

func TestToggle_SwitchesBetweenLightAndDark(t *testing.T) {
	prev := Active
	t.Cleanup(func() { Active = prev })

	SetActive("flexoki-dark")
	assert.Equal(t, "flexoki-light", Toggle("flexoki-light", "flexoki-dark"))
	assert.True(t, Active.Light)
	assert.Equal(t, "flexoki-dark", Toggle("flexoki-light", "flexoki-dark"))
	assert.False(t, Active.Light)
}

func TestNames_UniqueAndComplete(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(All))
	seen := map[string]bool{}
	for _, n := range names {
		assert.False(t, seen[n], "duplicate theme %q", n)
		seen[n] = true
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "header", Header.String())
	assert.Equal(t, "unknown", Role(99).String())
}

func TestStyle_CardHasBorder(t *testing.T) {
	s := FlexokiDark.Style(Card)
	assert.True(t, s.GetBorderTop())
	assert.False(t, FlexokiDark.Style(Secondary).GetBorderTop())
}
