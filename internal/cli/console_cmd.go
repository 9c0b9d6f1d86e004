// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jeranaias/swapwatch/internal/app"
	"github.com/jeranaias/swapwatch/internal/config"
	"github.com/jeranaias/swapwatch/internal/logging"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ConsoleCLI provides input history and line editing for the console.
type ConsoleCLI struct {
	line        *liner.State
	historyFile string
}

// NewConsoleCLI creates a line editor with history from the config directory.
func NewConsoleCLI() *ConsoleCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	c := &ConsoleCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "console_history"),
	}
	c.LoadHistory()
	return c
}

// LoadHistory loads command history from file.
func (c *ConsoleCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line with the given prompt.
func (c *ConsoleCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history with 0600 permissions.
func (c *ConsoleCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (c *ConsoleCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// CONSOLE COMMAND
// =============================================================================

func newConsoleCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Drive the layout from a line prompt",
		Long: `console runs the same layout without the full-screen view. Every line you
enter counts as activity. Type 'help' for the commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			mode := logging.ModeFile
			if flags.verbose {
				mode = logging.ModeConsole
			}
			log, closeLog, err := newLogger(cfg, flags, mode, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			con, err := app.NewConsole(cfg, out, log, app.Options{})
			if err != nil {
				return err
			}
			if err := con.Start(ctx); err != nil {
				return errors.Join(err, con.Close())
			}
			banner := GetColorProfile().String("swapwatch " + Version).Bold().String()
			fmt.Fprintln(out, banner)
			fmt.Fprintln(out, app.ConsoleHelp)

			if IsTTY() {
				runInteractive(con)
			} else {
				runPiped(con, cmd.InOrStdin())
			}
			return con.Close()
		},
	}
}

func runInteractive(con *app.Console) {
	input := NewConsoleCLI()
	defer input.Close()

	for {
		line, err := input.ReadInput("swapwatch> ")
		if err != nil {
			// Ctrl+C, Ctrl+D or a closed stdin all end the console.
			return
		}
		if con.Handle(line) {
			return
		}
	}
}

func runPiped(con *app.Console, in io.Reader) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if con.Handle(sc.Text()) {
			return
		}
	}
}
