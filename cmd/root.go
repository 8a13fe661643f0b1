// Package cmd implements the habitrack CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/habitrack/internal/cli"
	"github.com/theirongolddev/habitrack/internal/config"
	"github.com/theirongolddev/habitrack/internal/logging"
	"github.com/theirongolddev/habitrack/internal/store"
	"github.com/theirongolddev/habitrack/internal/tracker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	flagDataFile string
	flagBackend  string
	flagWindow   int
	flagQuiet    bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:           "habitrack",
	Short:         "Daily habit tracker",
	Long:          "Track daily habits from the terminal: streaks, completion rates and a month calendar.",
	RunE:          runList,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderWarning(errorMessage(err)))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data-file", "f", "", "Data file (default habits_data.json, or $"+config.DataFileEnv+")")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: json or sqlite (default from config)")
	rootCmd.PersistentFlags().IntVarP(&flagWindow, "window", "n", 0, "Completion rate window in days (default from config, 30)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print errors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// session is what every command works against: effective config, logger,
// and a loaded tracker.
type session struct {
	cfg     config.Config
	logger  *zap.Logger
	backend store.Backend
	tr      *tracker.Tracker
}

// openSession is the shared loading path used by all commands. Flags
// override config. toFile sends logs to the log file instead of stderr.
func openSession(toFile bool) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagWindow > 0 {
		cfg.General.WindowDays = flagWindow
	}

	logger, err := logging.New(logging.FromConfig(cfg, flagVerbose, toFile))
	if err != nil {
		return nil, err
	}

	path := config.DataPath(cfg)
	if flagDataFile != "" {
		path = flagDataFile
	}

	backend, err := store.Open(cfg.Storage.Backend, path, logger)
	if err != nil {
		return nil, err
	}

	tr := tracker.New(backend, logger)
	if err := tr.Load(); err != nil {
		_ = backend.Close()
		return nil, err
	}

	logger.Debug("session opened",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", backend.Path()),
		zap.Int("habits", tr.Len()),
	)
	return &session{cfg: cfg, logger: logger, backend: backend, tr: tr}, nil
}

func (s *session) Close() {
	if err := s.backend.Close(); err != nil {
		s.logger.Warn("closing store", zap.Error(err))
	}
	_ = s.logger.Sync()
}

func (s *session) window() int {
	if s.cfg.General.WindowDays > 0 {
		return s.cfg.General.WindowDays
	}
	return config.DefaultConfig().General.WindowDays
}

// errorMessage adds the fix to errors the user can act on.
func errorMessage(err error) string {
	var malformed *store.MalformedDataError
	var perr *tracker.PersistenceError
	switch {
	case errors.As(err, &malformed):
		return fmt.Sprintf("%v\n  Repair the file or move it aside; habitrack starts empty when %s does not exist.",
			err, malformed.Path)
	case errors.As(err, &perr):
		return fmt.Sprintf("%v\n  The change was not saved. Check that %s is writable.", err, perr.Path)
	default:
		return err.Error()
	}
}

func isPersistence(err error) bool {
	var perr *tracker.PersistenceError
	return errors.As(err, &perr)
}

// interactive reports whether prompts can be shown.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// info prints a progress line unless --quiet.
func info(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Printf(format, args...)
}
