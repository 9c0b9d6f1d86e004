// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package analytics

import (
	"context"

	"github.com/rs/zerolog"
)

// LogWorkerName is the registry name of the log worker.
const LogWorkerName = "log"

// LogWorker writes events to the structured log.
type LogWorker struct {
	log zerolog.Logger
}

// NewLogWorker creates the worker.
func NewLogWorker(log zerolog.Logger) *LogWorker {
	return &LogWorker{log: log.With().Str("component", "analytics").Logger()}
}

// Name implements Worker.
func (w *LogWorker) Name() string { return LogWorkerName }

// Send implements Worker.
func (w *LogWorker) Send(_ context.Context, ev Event) error {
	w.log.Info().
		Str("event_id", ev.ID).
		Str("event_name", ev.Name).
		Str("network", ev.Network).
		Time("tracked", ev.Time).
		Msg("track")
	return nil
}

// Close implements Worker.
func (w *LogWorker) Close() error { return nil }
