package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/habitrack/internal/config"
	"github.com/theirongolddev/habitrack/internal/model"
	"github.com/theirongolddev/habitrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formAdd
	formDelete
	formSetup
)

// formValues backs whichever huh form is open. It lives on the heap so
// the pointers handed to huh survive copies of App.
type formValues struct {
	name        string
	category    string
	description string

	target  string // habit being deleted
	confirm bool

	windowDays string
	theme      string
	backend    string
}

func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel"))
	return km
}

func formTheme() *huh.Theme {
	if theme.Active.Light {
		return huh.ThemeBase()
	}
	return huh.ThemeCharm()
}

// newAddForm asks for a new habit. exists reports names already taken so
// the form can reject duplicates before submitting.
func newAddForm(vals *formValues, categories []string, exists func(string) bool) *huh.Form {
	opts := []huh.Option[string]{huh.NewOption("(none)", "")}
	opts = append(opts, huh.NewOptions(categories...)...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Placeholder("Drink water").
				Value(&vals.name).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return errors.New("name is required")
					}
					if exists(s) {
						return fmt.Errorf("%q already exists", s)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(opts...).
				Value(&vals.category),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&vals.description),
		),
	).WithTheme(formTheme()).WithKeyMap(formKeyMap()).WithShowHelp(true)
}

func newDeleteForm(vals *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", vals.target)).
				Description("Its whole completion history is removed too.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&vals.confirm),
		),
	).WithTheme(formTheme()).WithKeyMap(formKeyMap())
}

var windowOptions = []int{7, 14, 30, 90}

// newSetupForm is the first-run wizard. Values start from cfg.
func newSetupForm(vals *formValues, cfg config.Config) *huh.Form {
	vals.windowDays = strconv.Itoa(cfg.General.WindowDays)
	vals.theme = cfg.Appearance.Theme
	vals.backend = cfg.Storage.Backend

	windows := make([]huh.Option[string], 0, len(windowOptions))
	for _, d := range windowOptions {
		windows = append(windows, huh.NewOption(fmt.Sprintf("%d days", d), strconv.Itoa(d)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to habitrack").
				Description("A few choices, all changeable later in Settings\nor with `habitrack setup`."),
			huh.NewSelect[string]().
				Title("Completion rate window").
				Options(windows...).
				Value(&vals.windowDays),
			huh.NewSelect[string]().
				Title("Colour theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.theme),
			huh.NewSelect[string]().
				Title("Storage").
				Options(
					huh.NewOption("JSON file (habits_data.json)", config.BackendJSON),
					huh.NewOption("SQLite database (habits_data.db)", config.BackendSQLite),
				).
				Value(&vals.backend),
		),
	).WithTheme(formTheme()).WithKeyMap(formKeyMap())
}

// applySetup copies wizard answers into cfg.
func applySetup(vals *formValues, cfg *config.Config) {
	if d, err := strconv.Atoi(vals.windowDays); err == nil && d > 0 {
		cfg.General.WindowDays = d
	}
	if vals.theme != "" {
		cfg.Appearance.Theme = vals.theme
		if theme.ByName(vals.theme).Light {
			cfg.Appearance.LightTheme = vals.theme
		} else {
			cfg.Appearance.DarkTheme = vals.theme
		}
	}
	if vals.backend != "" {
		cfg.Storage.Backend = vals.backend
	}
}

func categorySuggestions(cfg config.Config) []string {
	return config.Categories(cfg, model.DefaultCategories)
}

// HabitInput holds the answers of the standalone add form.
type HabitInput struct {
	Name        string
	Category    string
	Description string
}

// RunAddForm asks for a new habit on the terminal. Cancelling returns
// huh.ErrUserAborted.
func RunAddForm(cfg config.Config, exists func(string) bool) (HabitInput, error) {
	vals := &formValues{}
	if err := newAddForm(vals, categorySuggestions(cfg), exists).Run(); err != nil {
		return HabitInput{}, err
	}
	return HabitInput{Name: vals.name, Category: vals.category, Description: vals.description}, nil
}

// RunDeleteConfirm asks before deleting name.
func RunDeleteConfirm(name string) (bool, error) {
	vals := &formValues{target: name}
	if err := newDeleteForm(vals).Run(); err != nil {
		return false, err
	}
	return vals.confirm, nil
}

// RunSetup runs the first-run wizard and returns cfg with the answers
// applied. Nothing is written.
func RunSetup(cfg config.Config) (config.Config, error) {
	vals := &formValues{}
	if err := newSetupForm(vals, cfg).Run(); err != nil {
		return cfg, err
	}
	applySetup(vals, &cfg)
	return cfg, nil
}
