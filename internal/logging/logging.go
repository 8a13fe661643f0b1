// Package logging builds the zap logger shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/habitrack/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where log output goes.
type Options struct {
	Level   string
	File    string // empty means stderr
	Verbose bool   // forces debug level
}

// FromConfig derives logger options from the config. When toFile is set the
// logger writes to the configured file (or the default under the state
// dir) so the alt-screen TUI is not corrupted. Stderr output is limited to
// warnings unless verbose.
func FromConfig(cfg config.Config, verbose, toFile bool) Options {
	opts := Options{Level: cfg.Logging.Level, Verbose: verbose}
	if !toFile {
		opts.Level = "warn"
		return opts
	}
	opts.File = cfg.Logging.File
	if opts.File == "" {
		opts.File = DefaultFile()
	}
	return opts
}

// DefaultFile is the log file used by the TUI when none is configured.
func DefaultFile() string {
	return filepath.Join(config.StateDir(), "habitrack.log")
}

// New builds a console-encoded zap logger.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", opts.Level, err)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var sink zapcore.WriteSyncer
	if opts.File == "" {
		sink = zapcore.Lock(os.Stderr)
	} else {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return nil, fmt.Errorf("creating log dir: %w", err)
		}
		//nolint:gosec // log path is configured by the local user
		f, err := os.OpenFile(opts.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		sink = zapcore.AddSync(f)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}
