// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lifecycle

import (
	"sync"
	"time"

	"github.com/jeranaias/swapwatch/internal/analytics"
)

// manualExecutor queues posted funcs and fires timers only when told to.
type manualExecutor struct {
	mu      sync.Mutex
	queue   []func()
	timers  map[int]*manualTimer
	nextID  int
	onEvery func()
}

type manualTimer struct {
	period time.Duration
	fn     func()
}

func newManualExecutor() *manualExecutor {
	return &manualExecutor{timers: make(map[int]*manualTimer)}
}

func (e *manualExecutor) Post(fn func()) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queue = append(e.queue, fn)
	return true
}

func (e *manualExecutor) Queued() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

func (e *manualExecutor) Every(period time.Duration, fn func()) func() {
	id := e.nextID
	e.nextID++
	e.timers[id] = &manualTimer{period: period, fn: fn}
	if e.onEvery != nil {
		e.onEvery()
	}
	return func() { delete(e.timers, id) }
}

// Drain runs queued funcs until the queue is empty.
func (e *manualExecutor) Drain() {
	for {
		e.mu.Lock()
		if len(e.queue) == 0 {
			e.mu.Unlock()
			return
		}
		fn := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()
		fn()
	}
}

// Tick fires every live timer n times, draining the queue before each round.
func (e *manualExecutor) Tick(n int) {
	for i := 0; i < n; i++ {
		e.Drain()
		for _, t := range e.timers {
			t.fn()
		}
	}
	e.Drain()
}

func (e *manualExecutor) LiveTimers() int { return len(e.timers) }

// fakeClock is advanced by hand.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// recordingTracker keeps tracked names.
type recordingTracker struct {
	names   []string
	onTrack func(string)
}

func (r *recordingTracker) Track(name string) {
	r.names = append(r.names, name)
	if r.onTrack != nil {
		r.onTrack(name)
	}
}

func trackerFactory(tr *recordingTracker, got *analytics.Options) AnalyticsFactory {
	return func(opts analytics.Options) (analytics.Tracker, error) {
		if got != nil {
			*got = opts
		}
		return tr, nil
	}
}
