// Package tui provides the interactive Bubble Tea dashboard for habitrack.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/habitrack/internal/calendar"
	"github.com/theirongolddev/habitrack/internal/config"
	"github.com/theirongolddev/habitrack/internal/model"
	"github.com/theirongolddev/habitrack/internal/tracker"
	"github.com/theirongolddev/habitrack/internal/tui/components"
	"github.com/theirongolddev/habitrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	tabHabits = iota
	tabCalendar
	tabStats
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	maxFormWidth     = 72
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	tr     *tracker.Tracker
	cfg    config.Config
	logger *zap.Logger

	// persisted by saveConfig; swapped in tests
	saveConfigFn func(config.Config) error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	keys      keyMap
	help      help.Model
	status    string
	day       string // DayKey of the last tick, to notice midnight

	// Per-tab state
	habits   habitsState
	cal      *calendar.View
	settings settingsState

	// Open huh form, if any
	form     *huh.Form
	formKind formKind
	vals     *formValues
}

// NewApp creates the dashboard over an already loaded tracker. When no
// config file exists yet the first-run wizard opens immediately.
func NewApp(tr *tracker.Tracker, cfg config.Config, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}

	today := tr.Today()
	cal := calendar.NewView(today)
	cal.Sync(tr.Names())

	a := App{
		tr:           tr,
		cfg:          cfg,
		logger:       logger,
		saveConfigFn: config.Save,
		keys:         newKeyMap(),
		help:         help.New(),
		day:          model.DayKey(today),
		cal:          cal,
		vals:         &formValues{},
	}
	a.applyHelpStyles()

	if !config.Exists() {
		a.openForm(formSetup, newSetupForm(a.vals, cfg))
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		tickCmd(),
	}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

type tickMsg time.Time

// tickCmd wakes the app once a minute so the today highlight moves at
// midnight.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, maxFormWidth)).WithHeight(msg.Height)
		}
		return a, nil

	case tickMsg:
		if day := model.DayKey(a.tr.Today()); day != a.day {
			a.day = day
			a.cal.SetToday(a.tr.Today())
			a.logger.Debug("day rolled over", zap.String("day", day))
		}
		return a, tickCmd()

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// An open form takes every key
		if a.form != nil {
			return a.updateForm(msg)
		}

		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.updateKeys(msg)
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s := msg.String(); len(s) == 1 {
		if idx := components.TabIdxByKey(rune(s[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case key.Matches(msg, a.keys.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case key.Matches(msg, a.keys.Theme):
		a.toggleTheme()
		return a, nil
	case key.Matches(msg, a.keys.Retry):
		a.report(a.tr.Flush(), "Saved to "+a.tr.Path())
		return a, nil
	}

	switch a.activeTab {
	case tabHabits:
		return a.updateHabitsKeys(msg)
	case tabCalendar:
		return a.updateCalendarKeys(msg)
	case tabSettings:
		return a.updateSettingsKeys(msg)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabHabits {
			a.habits.move(-1, a.tr.Len())
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabHabits {
			a.habits.move(1, a.tr.Len())
		}
	case tea.MouseButtonLeft:
		// Tab bar is the second header line
		if msg.Action == tea.MouseActionPress && msg.Y == 1 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// ─── Forms ──────────────────────────────────────────────────────

func (a *App) openForm(kind formKind, f *huh.Form) {
	a.formKind = kind
	a.form = f
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width, maxFormWidth)).WithHeight(a.height)
	}
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
	*a.vals = formValues{}
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.submitForm()
		a.closeForm()
		return a, nil
	case huh.StateAborted:
		if a.formKind == formSetup {
			// Skipping the wizard still writes defaults so it is not shown again.
			a.saveConfig()
		}
		a.closeForm()
		return a, nil
	}

	return a, cmd
}

// submitForm applies a completed form.
func (a *App) submitForm() {
	switch a.formKind {
	case formAdd:
		h, err := a.tr.Add(a.vals.name, a.vals.category, a.vals.description)
		a.report(err, fmt.Sprintf("Added %q", h.Name))
		if err == nil || isPersistence(err) {
			a.habits.cursor = a.tr.Len() - 1
		}
		a.afterChange()

	case formDelete:
		if !a.vals.confirm {
			a.status = "Kept " + a.vals.target
			return
		}
		name := a.vals.target
		err := a.tr.Delete(name)
		a.report(err, fmt.Sprintf("Deleted %q", name))
		if err == nil || isPersistence(err) {
			a.cal.HabitDeleted(name, a.tr.Names())
		}
		a.afterChange()

	case formSetup:
		prevBackend := a.cfg.Storage.Backend
		applySetup(a.vals, &a.cfg)
		theme.SetActive(a.cfg.Appearance.Theme)
		a.applyHelpStyles()
		a.saveConfig()
		if a.cfg.Storage.Backend != prevBackend {
			a.status = "Storage change applies on next start"
		}
	}
}

// ─── State helpers ──────────────────────────────────────────────

func isPersistence(err error) bool {
	var perr *tracker.PersistenceError
	return errors.As(err, &perr)
}

// report turns a mutation result into the status line. A failed save
// still applied the change, so the success text is kept.
func (a *App) report(err error, ok string) {
	switch {
	case err == nil:
		a.status = ok
	case isPersistence(err):
		a.status = ok + " (not saved)"
	default:
		a.status = err.Error()
	}
}

// afterChange re-syncs view state with the tracker after a mutation.
func (a *App) afterChange() {
	a.cal.Sync(a.tr.Names())
	a.habits.clamp(a.tr.Len())
}

func (a *App) toggleTheme() {
	name := theme.Toggle(a.cfg.Appearance.LightTheme, a.cfg.Appearance.DarkTheme)
	a.cfg.Appearance.Theme = name
	a.applyHelpStyles()
	a.logger.Info("theme toggled", zap.String("theme", name))
	a.saveConfig()
}

func (a *App) saveConfig() {
	if err := a.saveConfigFn(a.cfg); err != nil {
		a.logger.Error("saving config", zap.Error(err))
		a.status = "Config not saved: " + err.Error()
	}
}

func (a *App) applyHelpStyles() {
	t := theme.Active
	a.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	a.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	a.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	a.help.Styles.FullKey = lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	a.help.Styles.FullDesc = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	a.help.Styles.FullSeparator = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
}

func (a App) window() int {
	if a.cfg.General.WindowDays > 0 {
		return a.cfg.General.WindowDays
	}
	return config.DefaultConfig().General.WindowDays
}

func (a App) historyDays() int {
	if a.cfg.General.HistoryDays > 0 {
		return a.cfg.General.HistoryDays
	}
	return config.DefaultConfig().General.HistoryDays
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// ─── Views ──────────────────────────────────────────────────────

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.viewForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  habitrack needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(a.form.View()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := t.Style(theme.Header)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("1-4 jump to tab · press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHeader(w int) string {
	t := theme.Active
	style := t.Style(theme.Header).Width(w)

	left := " ◈ habitrack"
	right := a.tr.Today().Format("Mon Jan 2, 2006") + " "
	gap := max(w-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return style.Render(left+strings.Repeat(" ", gap)+right) + "\n" +
		components.RenderTabBar(a.activeTab, w)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header and status bar
	header := a.viewHeader(w)
	statusBar := components.RenderStatusBar(w, components.StatusBar{
		Help:    a.help.ShortHelpView(a.keys.ShortHelp()),
		Message: a.status,
		Unsaved: a.tr.Dirty(),
		Path:    a.tr.Path(),
	})

	// 2. Content zone height
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	// 3. Tab content
	var content string
	switch a.activeTab {
	case tabHabits:
		content = a.renderHabitsTab(cw, contentH)
	case tabCalendar:
		content = a.renderCalendarTab(cw)
	case tabStats:
		content = a.renderStatsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 4. Exactly contentH lines, each filled to width
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the same widths RenderTabBar uses.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color
// so gaps between cards are not left unstyled.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
