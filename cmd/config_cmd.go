package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/habitrack/internal/config"
	"github.com/theirongolddev/habitrack/internal/logging"
	"github.com/theirongolddev/habitrack/internal/model"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Rate window:  %d days\n", cfg.General.WindowDays)
	fmt.Printf("    History:      %d days\n", cfg.General.HistoryDays)
	fmt.Println()

	backend := cfg.Storage.Backend
	if flagBackend != "" {
		backend = flagBackend
		cfg.Storage.Backend = flagBackend
	}
	path := config.DataPath(cfg)
	if flagDataFile != "" {
		path = flagDataFile
	}
	fmt.Println("  [Storage]")
	fmt.Printf("    Backend:      %s\n", backend)
	fmt.Printf("    Data file:    %s\n", path)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:        %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Light / dark: %s / %s\n", cfg.Appearance.LightTheme, cfg.Appearance.DarkTheme)
	fmt.Println()

	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = logging.DefaultFile() + " (tui only)"
	}
	fmt.Println("  [Logging]")
	fmt.Printf("    Level:        %s\n", cfg.Logging.Level)
	fmt.Printf("    File:         %s\n", logFile)
	fmt.Println()

	cats := strings.Join(config.Categories(cfg, model.DefaultCategories), ", ")
	if len(cfg.Categories.Suggestions) == 0 {
		cats += " (defaults)"
	}
	fmt.Println("  [Categories]")
	fmt.Printf("    Suggestions:  %s\n", cats)
	fmt.Println()

	fmt.Println("  Run `habitrack setup` to reconfigure.")
	return nil
}
