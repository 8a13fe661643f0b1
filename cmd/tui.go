package cmd

import (
	"fmt"

	"github.com/theirongolddev/habitrack/internal/tui"
	"github.com/theirongolddev/habitrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Logs go to file so the alt screen stays clean
	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(s.tr, s.cfg, s.logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Last chance for changes whose save failed inside the dashboard.
	if s.tr.Dirty() {
		s.logger.Warn("unsaved changes at exit, retrying")
		if err := s.tr.Flush(); err != nil {
			return err
		}
		s.logger.Info("saved on exit", zap.String("path", s.tr.Path()))
	}
	return nil
}
