package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/habitrack/internal/calendar"
	"github.com/theirongolddev/habitrack/internal/config"
	"github.com/theirongolddev/habitrack/internal/model"
	"github.com/theirongolddev/habitrack/internal/tracker"
	"github.com/theirongolddev/habitrack/internal/tui/components"
	"github.com/theirongolddev/habitrack/internal/tui/theme"
)

type memBackend struct {
	snap model.Snapshot
	fail error
}

func (m *memBackend) Load() (model.Snapshot, error) { return m.snap, nil }
func (m *memBackend) Path() string                   { return "mem.json" }
func (m *memBackend) Close() error                   { return nil }

func (m *memBackend) Save(snap model.Snapshot) error {
	if m.fail != nil {
		return m.fail
	}
	m.snap = snap
	return nil
}

var testToday = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local)

func newTestApp(t *testing.T, habits ...string) (App, *tracker.Tracker, *memBackend) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, config.Save(config.DefaultConfig()))

	prev := theme.Active
	t.Cleanup(func() { theme.Active = prev })

	b := &memBackend{}
	tr := tracker.New(b, zap.NewNop(), tracker.WithClock(func() time.Time { return testToday }))
	require.NoError(t, tr.Load())
	for _, h := range habits {
		_, err := tr.Add(h, "", "")
		require.NoError(t, err)
	}

	a := NewApp(tr, config.DefaultConfig(), zap.NewNop())
	a.saveConfigFn = func(config.Config) error { return nil }
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m.(App), tr, b
}

func press(t *testing.T, a App, keys ...tea.KeyMsg) App {
	t.Helper()
	var m tea.Model = a
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m.(App)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestNewApp_OpensSetupWithoutConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tr := tracker.New(&memBackend{}, zap.NewNop())
	a := NewApp(tr, config.DefaultConfig(), nil)

	assert.Equal(t, formSetup, a.formKind)
	assert.NotNil(t, a.form)
}

func TestSpaceTogglesSelectedHabit(t *testing.T) {
	a, tr, _ := newTestApp(t, "Read", "Run")

	a = press(t, a, runes("j"), space)
	assert.True(t, tr.IsCompleted("Run", testToday))
	assert.False(t, tr.IsCompleted("Read", testToday))
	assert.Contains(t, a.status, "Run: done today")

	a = press(t, a, space)
	assert.False(t, tr.IsCompleted("Run", testToday))
}

func TestCursorClampsAtEnds(t *testing.T) {
	a, _, _ := newTestApp(t, "Read", "Run")
	a = press(t, a, runes("k"), runes("k"))
	assert.Zero(t, a.habits.cursor)
	a = press(t, a, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 1, a.habits.cursor)
}

func TestTabSwitching(t *testing.T) {
	a, _, _ := newTestApp(t, "Read")

	a = press(t, a, runes("2"))
	assert.Equal(t, tabCalendar, a.activeTab)
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabStats, a.activeTab)
	a = press(t, a, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabSettings, a.activeTab)
}

func TestCalendarNavigation(t *testing.T) {
	a, _, _ := newTestApp(t, "Read", "Run")
	a = press(t, a, runes("2"))

	name, ok := a.cal.Selected()
	require.True(t, ok)
	assert.Equal(t, "Read", name)

	a = press(t, a, runes("]"), runes("h"), runes("h"))
	name, _ = a.cal.Selected()
	assert.Equal(t, "Run", name)
	assert.Equal(t, calendar.Month{Year: 2024, Month: time.April}, a.cal.Month())

	a = press(t, a, runes("."))
	assert.Equal(t, calendar.Month{Year: 2024, Month: time.June}, a.cal.Month())
}

func TestCalendarPlaceholderWithoutHabits(t *testing.T) {
	a, _, _ := newTestApp(t)
	a = press(t, a, runes("2"))
	assert.Contains(t, a.View(), "No habits to show yet")
}

func TestAddFormSubmit(t *testing.T) {
	a, tr, _ := newTestApp(t, "Read")

	a = press(t, a, runes("a"))
	require.Equal(t, formAdd, a.formKind)

	a.vals.name = "  Stretch "
	a.vals.category = "Fitness"
	a.submitForm()
	a.closeForm()

	h, ok := tr.Get("Stretch")
	require.True(t, ok)
	assert.Equal(t, "Fitness", h.Category)
	assert.Equal(t, 1, a.habits.cursor, "cursor follows the new habit")
	assert.Nil(t, a.form)
}

func TestAddFormDuplicateReportsError(t *testing.T) {
	a, tr, _ := newTestApp(t, "Read")
	a.formKind = formAdd
	a.vals.name = "Read"
	a.submitForm()

	assert.Contains(t, a.status, "already exists")
	assert.Equal(t, 1, tr.Len())
}

func TestDeleteFormCascadesAndReselects(t *testing.T) {
	a, tr, _ := newTestApp(t, "Read", "Run")
	_, err := tr.ToggleToday("Read")
	require.NoError(t, err)

	a = press(t, a, runes("d"))
	require.Equal(t, formDelete, a.formKind)
	assert.Equal(t, "Read", a.vals.target)

	a.vals.confirm = true
	a.submitForm()

	assert.Equal(t, []string{"Run"}, tr.Names())
	assert.Empty(t, tr.Completions("Read"))
	name, _ := a.cal.Selected()
	assert.Equal(t, "Run", name)
}

func TestDeleteFormDeclinedKeepsHabit(t *testing.T) {
	a, tr, _ := newTestApp(t, "Read")
	a.formKind = formDelete
	a.vals.target = "Read"
	a.vals.confirm = false
	a.submitForm()

	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, "Kept Read", a.status)
}

func TestEscClosesForm(t *testing.T) {
	a, _, _ := newTestApp(t, "Read")
	a = press(t, a, runes("a"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, a.form)
	assert.Equal(t, formNone, a.formKind)
}

func TestSaveFailureShowsUnsavedAndRetries(t *testing.T) {
	a, tr, b := newTestApp(t, "Read")
	b.fail = errors.New("read-only file system")

	a = press(t, a, space)
	assert.True(t, tr.IsCompleted("Read", testToday), "change stays in memory")
	assert.True(t, tr.Dirty())
	assert.Contains(t, a.status, "not saved")
	assert.Contains(t, a.View(), "unsaved")

	b.fail = nil
	a = press(t, a, runes("w"))
	assert.False(t, tr.Dirty())
	assert.NotContains(t, a.View(), "unsaved")
}

func TestThemeTogglePersists(t *testing.T) {
	a, _, _ := newTestApp(t, "Read")
	theme.SetActive("flexoki-dark")

	var saved config.Config
	a.saveConfigFn = func(c config.Config) error {
		saved = c
		return nil
	}

	a = press(t, a, runes("t"))
	assert.Equal(t, "flexoki-light", theme.Active.Name)
	assert.Equal(t, "flexoki-light", saved.Appearance.Theme)
	assert.Equal(t, "flexoki-light", a.cfg.Appearance.Theme)
}

func TestSettingsEditWindow(t *testing.T) {
	a, _, _ := newTestApp(t, "Read")
	a = press(t, a, runes("4"), runes("j"), runes("j"), runes("j"))
	require.Equal(t, settingsFieldWindow, a.settings.cursor)

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.settings.editing)
	a.settings.input.SetValue("7")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, a.settings.editing)
	assert.NoError(t, a.settings.saveErr)
	assert.Equal(t, 7, a.window())
}

func TestSettingsRejectsUnknownTheme(t *testing.T) {
	a, _, _ := newTestApp(t)
	a = press(t, a, runes("4"), tea.KeyMsg{Type: tea.KeyEnter})
	a.settings.input.SetValue("neon")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.ErrorContains(t, a.settings.saveErr, "unknown theme")
	assert.Equal(t, "flexoki-dark", a.cfg.Appearance.Theme)
}

func TestViewRendersEveryTab(t *testing.T) {
	a, tr, _ := newTestApp(t, "Read", "Água")
	_, err := tr.ToggleToday("Read")
	require.NoError(t, err)

	for i := range components.Tabs {
		a.activeTab = i
		out := a.View()
		lines := strings.Split(out, "\n")
		assert.Len(t, lines, 40, "tab %d fills the terminal", i)
		assert.Contains(t, out, "habitrack")
	}
}

func TestHelpToggle(t *testing.T) {
	a, _, _ := newTestApp(t)
	a = press(t, a, runes("?"))
	assert.True(t, a.showHelp)
	assert.Contains(t, a.View(), "Keyboard Shortcuts")
	a = press(t, a, runes("x"))
	assert.False(t, a.showHelp)
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 1
		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			assert.Equal(t, i, a.tabAtX(pos+w/2), "active=%d tab=%d", active, i)
			pos += w + 1
		}
		assert.Equal(t, -1, a.tabAtX(0))
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	a, _, _ := newTestApp(t)
	x := 1 + components.TabVisualWidth(components.Tabs[0], true) + 1 + 2
	m, _ := a.Update(tea.MouseMsg{X: x, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, tabCalendar, m.(App).activeTab)
}

func TestChartDateLabels(t *testing.T) {
	days := []model.DailyCompletions{
		{Date: time.Date(2024, time.May, 30, 0, 0, 0, 0, time.Local)},
		{Date: time.Date(2024, time.May, 31, 0, 0, 0, 0, time.Local)},
		{Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)},
		{Date: time.Date(2024, time.June, 2, 0, 0, 0, 0, time.Local)},
	}
	assert.Equal(t, []string{"May", "31", "Jun", "2"}, chartDateLabels(days))
}
