// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package activity

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/jeranaias/swapwatch/internal/throttle"
)

// Listener forwards input from its sources to a reset target, coalesced so the
// reset runs at most once per cooldown window.
type Listener struct {
	sources []Source
	gate    *throttle.Coalescer
	reset   func()
	log     zerolog.Logger

	last Kind
	seen int
}

// NewListener builds a listener. A nil clock uses time.Now.
func NewListener(reset func(), cooldown time.Duration, now func() time.Time, log zerolog.Logger, sources ...Source) *Listener {
	return &Listener{
		sources: sources,
		gate:    throttle.New(cooldown, now),
		reset:   reset,
		log:     log,
	}
}

// Attach subscribes to every source. The returned func detaches all of them.
func (l *Listener) Attach() (release func()) {
	detach := make([]func(), 0, len(l.sources))
	for _, src := range l.sources {
		if src == nil {
			continue
		}
		detach = append(detach, src.Subscribe(l.handle))
	}
	return func() {
		for _, fn := range detach {
			fn()
		}
	}
}

func (l *Listener) handle(k Kind) {
	l.last = k
	l.seen++
	if !l.gate.Allow() {
		return
	}
	l.log.Debug().Str("event", "IDLE_RESET").Stringer("kind", k).Msg("activity")
	l.reset()
}

// Seen returns the number of raw signals observed and the latest kind.
func (l *Listener) Seen() (int, Kind) {
	return l.seen, l.last
}

// Gate exposes the coalescer for status reporting.
func (l *Listener) Gate() *throttle.Coalescer {
	return l.gate
}
