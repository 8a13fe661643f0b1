package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/habitrack/internal/cli"
	"github.com/theirongolddev/habitrack/internal/config"
	"github.com/theirongolddev/habitrack/internal/logging"
	"github.com/theirongolddev/habitrack/internal/tui/components"
	"github.com/theirongolddev/habitrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldLightTheme
	settingsFieldDarkTheme
	settingsFieldWindow
	settingsFieldHistory
	settingsFieldCategories
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last edit was rejected or not written
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) updateSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Down):
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case key.Matches(msg, a.keys.Up):
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case key.Matches(msg, a.keys.Edit):
		return a.settingsStartEdit()
	}
	return a, nil
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false
	a.settings.saveErr = nil

	ti := newSettingsInput()
	themes := strings.Join(theme.Names(), ", ")

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = themes
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldLightTheme:
		ti.Placeholder = themes
		ti.SetValue(a.cfg.Appearance.LightTheme)
	case settingsFieldDarkTheme:
		ti.Placeholder = themes
		ti.SetValue(a.cfg.Appearance.DarkTheme)
	case settingsFieldWindow:
		ti.Placeholder = "30"
		ti.SetValue(strconv.Itoa(a.window()))
	case settingsFieldHistory:
		ti.Placeholder = "14"
		ti.SetValue(strconv.Itoa(a.historyDays()))
	case settingsFieldCategories:
		ti.Placeholder = "Health, Fitness, ... (empty for defaults)"
		ti.SetValue(strings.Join(a.cfg.Categories.Suggestions, ", "))
	}

	ti.Focus()
	a.settings.input = ti
	return a, textinput.Blink
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Edit):
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case key.Matches(msg, a.keys.Cancel):
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func validTheme(name string) bool {
	for _, t := range theme.All {
		if t.Name == name {
			return true
		}
	}
	return false
}

// settingsSave validates the edited field, applies it and writes config.
func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())
	cfg := a.cfg

	switch a.settings.cursor {
	case settingsFieldTheme, settingsFieldLightTheme, settingsFieldDarkTheme:
		if !validTheme(val) {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return
		}
		switch a.settings.cursor {
		case settingsFieldTheme:
			cfg.Appearance.Theme = val
		case settingsFieldLightTheme:
			cfg.Appearance.LightTheme = val
		default:
			cfg.Appearance.DarkTheme = val
		}
	case settingsFieldWindow, settingsFieldHistory:
		d, err := strconv.Atoi(val)
		if err != nil || d <= 0 {
			a.settings.saveErr = fmt.Errorf("%q is not a positive number of days", val)
			return
		}
		if a.settings.cursor == settingsFieldWindow {
			cfg.General.WindowDays = d
		} else {
			cfg.General.HistoryDays = d
		}
	case settingsFieldCategories:
		cfg.Categories.Suggestions = nil
		for _, c := range strings.Split(val, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.Categories.Suggestions = append(cfg.Categories.Suggestions, c)
			}
		}
	}

	a.cfg = cfg
	theme.SetActive(a.cfg.Appearance.Theme)
	a.applyHelpStyles()
	a.settings.saveErr = a.saveConfigFn(a.cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	categories := strings.Join(categorySuggestions(a.cfg), ", ")
	if len(a.cfg.Categories.Suggestions) == 0 {
		categories += " (defaults)"
	}

	fields := []struct{ label, value string }{
		{"Theme", a.cfg.Appearance.Theme},
		{"Light theme", a.cfg.Appearance.LightTheme},
		{"Dark theme", a.cfg.Appearance.DarkTheme},
		{"Rate window", fmt.Sprintf("%d days", a.window())},
		{"History", fmt.Sprintf("%d days", a.historyDays())},
		{"Categories", categories},
	}

	innerW := components.CardInnerWidth(cw)
	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-14s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-14s ", f.label+":"))
			value := selectedStyle.Render(cli.Truncate(f.value, innerW-18))
			formBody.WriteString(marker + label + value)
			if padLen := innerW - lipgloss.Width(marker+label+value); padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-14s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(cli.Truncate(f.value, innerW-18)))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Not saved: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit/save  [Esc] cancel  [t] light/dark"))

	logFile := a.cfg.Logging.File
	if logFile == "" {
		logFile = logging.DefaultFile()
	}
	backend := a.cfg.Storage.Backend
	if backend == "" {
		backend = config.BackendJSON
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Data file:    ") + valueStyle.Render(a.tr.Path()) + "\n")
	infoBody.WriteString(labelStyle.Render("Backend:      ") + valueStyle.Render(backend) + "\n")
	infoBody.WriteString(labelStyle.Render("Habits:       ") + valueStyle.Render(cli.FormatNumber(int64(a.tr.Len()))) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()) + "\n")
	infoBody.WriteString(labelStyle.Render("Log file:     ") + valueStyle.Render(logFile))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
