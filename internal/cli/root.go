// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/jeranaias/swapwatch/internal/app"
	"github.com/jeranaias/swapwatch/internal/config"
	"github.com/jeranaias/swapwatch/internal/logging"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	verbose    bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "swapwatch",
		Short: "Swap session layout with idle timeout",
		Long: `swapwatch hosts the swap layout in the terminal. A signed-in session is
cleared after the configured idle timeout; any key press or mouse movement
counts as activity.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !IsStdoutTTY() || !IsTTY() {
				return &TTYRequiredError{Operation: "run the full-screen layout (try 'swapwatch console')"}
			}
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			log, closeLog, err := newLogger(cfg, flags, logging.ModeFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.RunTUI(ctx, cfg, log, app.Options{})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.swapwatch/config.toml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		newConsoleCmd(flags),
		newConfigCmd(flags),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and exits through atexit, so registered exit
// hooks run on every path.
func Execute() {
	atexit.Exit(ExitCode(NewRootCmd().ExecuteContext(context.Background())))
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsTTYRequired(err):
		return 2
	default:
		return 1
	}
}

// loadConfig reads the file named by --config or the default location, then
// applies --log-level.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	path := flags.configPath
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	config.SetGlobal(cfg)
	return cfg, nil
}

// newLogger builds the process logger. --verbose sends it to stderr; otherwise
// it goes to log.file or the default file in the config directory.
func newLogger(cfg *config.Config, flags *globalFlags, mode logging.Mode, stderr io.Writer) (zerolog.Logger, func() error, error) {
	opts := logging.Options{Mode: mode, Level: cfg.Log.Level, File: cfg.Log.File}
	if flags.verbose && mode == logging.ModeConsole {
		opts.Writer = zerolog.ConsoleWriter{Out: stderr}
	}
	if opts.Mode == logging.ModeFile && opts.File == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			return zerolog.Nop(), func() error { return nil }, err
		}
		opts.File = filepath.Join(dir, logging.DefaultFile)
	}
	log, closeFn, err := logging.New(opts)
	if err != nil {
		return log, closeFn, fmt.Errorf("logging: %w", err)
	}
	return log, closeFn, nil
}

// TTYRequiredError is returned when an operation requires a TTY but none is available.
type TTYRequiredError struct {
	Operation string
}

func (e *TTYRequiredError) Error() string {
	if e.Operation != "" {
		return "not a terminal; cannot " + e.Operation
	}
	return "not a terminal"
}

// IsTTYRequired reports whether err is a TTYRequiredError.
func IsTTYRequired(err error) bool {
	var t *TTYRequiredError
	return errors.As(err, &t)
}
