// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/swapwatch/internal/config"
	"github.com/jeranaias/swapwatch/internal/ui/layout"
)

// RunTUI runs the full-screen layout until the user quits or ctx is done.
// Extra program options are appended after the defaults.
func RunTUI(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts Options, progOpts ...tea.ProgramOption) error {
	if cfg == nil {
		cfg = config.Default()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exec := layout.NewExecutor(layout.DefaultQueueSize, log)
	defer exec.Stop()

	a, err := New(cfg, exec, log, opts)
	if err != nil {
		return err
	}

	exec.Post(func() {
		if err := a.Orchestrator.Mount(ctx); err != nil {
			log.Error().Err(err).Msg("mount failed")
		}
	})
	if err := a.WatchCatalogs(ctx, func() { exec.Post(func() {}) }); err != nil {
		log.Warn().Err(err).Msg("catalog watch disabled")
	}

	m := layout.New(layout.Options{
		Executor:     exec,
		Orchestrator: a.Orchestrator,
		Store:        a.Store,
		Hub:          a.Hub,
		Bus:          a.Bus,
		Translator:   a.Catalog,
		Logger:       log,
	})
	defer m.Close()

	popts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		popts = append(popts, tea.WithMouseAllMotion())
	}
	popts = append(popts, progOpts...)

	_, runErr := tea.NewProgram(m, popts...).Run()
	if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		runErr = nil
	}

	return errors.Join(runErr, a.Shutdown())
}
