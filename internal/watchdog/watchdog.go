// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watchdog

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultTickPeriod is the period between two idle evaluations.
const DefaultTickPeriod = 10 * time.Second

// Session is the part of the shared state the watchdog reads.
type Session interface {
	// HasAccount reports whether an authenticated account is present.
	HasAccount() bool
	// NoticeOpen reports whether a blocking notice is currently shown.
	NoticeOpen() bool
}

// Terminator ends the session once the idle threshold is reached.
type Terminator interface {
	Terminate()
}

// TerminatorFunc adapts a plain func to Terminator.
type TerminatorFunc func()

// Terminate calls f.
func (f TerminatorFunc) Terminate() { f() }

// State is the watchdog's position in its accumulation cycle.
type State int

const (
	// Accumulating counts idle ticks toward the threshold.
	Accumulating State = iota
	// Expired is held only while the Terminator runs.
	Expired
)

func (s State) String() string {
	switch s {
	case Accumulating:
		return "ACCUMULATING"
	case Expired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// Watchdog owns the idle counter.
type Watchdog struct {
	session   Session
	term      Terminator
	threshold int
	log       zerolog.Logger

	idle        int
	state       State
	expirations int
	skipped     int
}

// ThresholdFor converts an idle timeout into a tick count. The result is at
// least one tick.
func ThresholdFor(idleTimeout, tickPeriod time.Duration) int {
	if tickPeriod <= 0 {
		tickPeriod = DefaultTickPeriod
	}
	n := int(idleTimeout / tickPeriod)
	if n < 1 {
		n = 1
	}
	return n
}

// New creates a watchdog that expires after threshold idle ticks.
func New(session Session, term Terminator, threshold int, log zerolog.Logger) *Watchdog {
	if threshold < 1 {
		threshold = 1
	}
	return &Watchdog{
		session:   session,
		term:      term,
		threshold: threshold,
		log:       log,
	}
}

// Tick runs one idle evaluation and reports whether the session was
// terminated by it.
//
// Without an account or with a notice open the tick is a no-op: the counter is
// left untouched. Otherwise the tick is counted, and the tick that brings the
// counter to the threshold terminates the session and clears the counter.
func (w *Watchdog) Tick() bool {
	if !w.session.HasAccount() {
		w.skipped++
		return false
	}
	if w.session.NoticeOpen() {
		w.skipped++
		return false
	}

	w.idle++
	if w.idle < w.threshold {
		return false
	}

	w.state = Expired
	w.log.Info().
		Str("event", "SESSION_EXPIRED").
		Int("idle_ticks", w.idle).
		Int("threshold", w.threshold).
		Msg("idle threshold reached")
	if w.term != nil {
		w.term.Terminate()
	}
	w.expirations++
	w.idle = 0
	w.state = Accumulating
	return true
}

// Reset clears the idle counter. It is the target of the activity listener.
func (w *Watchdog) Reset() {
	w.idle = 0
}

// Idle returns the current counter value.
func (w *Watchdog) Idle() int { return w.idle }

// Threshold returns the tick count that triggers expiry.
func (w *Watchdog) Threshold() int { return w.threshold }

// State returns the current cycle state.
func (w *Watchdog) State() State { return w.state }

// Remaining returns the number of idle ticks left before expiry.
func (w *Watchdog) Remaining() int {
	return w.threshold - w.idle
}

// Snapshot is a point-in-time view for status displays.
type Snapshot struct {
	Idle        int
	Threshold   int
	State       State
	Expirations int
	Skipped     int
}

// Snapshot returns the current counters.
func (w *Watchdog) Snapshot() Snapshot {
	return Snapshot{
		Idle:        w.idle,
		Threshold:   w.threshold,
		State:       w.state,
		Expirations: w.expirations,
		Skipped:     w.skipped,
	}
}
