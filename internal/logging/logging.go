// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zerolog logger shared by every swapwatch package.
//
// While the TUI owns the terminal, logs go to a file. Headless commands write
// human-readable lines to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultFile is the log file name inside the config directory.
const DefaultFile = "swapwatch.log"

// Mode selects the log sink.
type Mode int

const (
	// ModeConsole writes colored lines to stderr.
	ModeConsole Mode = iota
	// ModeFile writes JSON lines to a file.
	ModeFile
)

// Options configures New.
type Options struct {
	Mode  Mode
	Level string
	// File is used by ModeFile. Parent directories are created.
	File string
	// Writer overrides the sink entirely (tests).
	Writer io.Writer
}

// ParseLevel maps a config level string to a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// New builds a logger. The returned closer releases the file sink and is
// never nil.
func New(opts Options) (zerolog.Logger, func() error, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), noop, err
	}

	var (
		w      io.Writer
		closer = noop
	)
	switch {
	case opts.Writer != nil:
		w = opts.Writer
	case opts.Mode == ModeFile:
		if opts.File == "" {
			return zerolog.Nop(), noop, fmt.Errorf("file logging requires a path")
		}
		if err := os.MkdirAll(filepath.Dir(opts.File), 0700); err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f.Close
	default:
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(w).Level(lvl).With().Timestamp().Str("app", "swapwatch").Logger()
	return logger, closer, nil
}

func noop() error { return nil }
